package main

import (
	"fmt"
	"strings"
)

// MissingElementsError reports every required UI role that failed to
// resolve during bootstrap. All lookups are attempted before this is
// built, so one report carries the complete list.
type MissingElementsError struct {
	Roles []Role
}

func (e *MissingElementsError) Error() string {
	names := make([]string, len(e.Roles))
	for i, r := range e.Roles {
		names[i] = r.String()
	}
	return fmt.Sprintf("missing required elements: %s", strings.Join(names, ", "))
}

// ValidationError marks unparsable numeric input. It aborts only the
// update cycle that produced it; engine state and the drawing surface
// are left untouched.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid input values: %s", strings.Join(e.Fields, ", "))
}
