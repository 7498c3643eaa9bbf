package main

import (
	"strings"

	"github.com/atotto/clipboard"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// copyToClipboard puts a plain-text snapshot of the surface on the
// system clipboard.
func copyToClipboard(surf *Surface) error {
	return clipboard.WriteAll(strings.Join(surf.PlainLines(), "\n"))
}
