package main

import (
	"io"
	"log"
	"os"
)

// DiagLog is the only failure-reporting channel. Every message goes
// to the background trace; errors are additionally appended to the
// visible output area. Entries are never cleared within a session.
type DiagLog struct {
	trace  *log.Logger
	output *textArea
	file   *os.File
}

// NewDiagLog opens the trace file when a path is configured. With no
// path the trace is discarded; the app owns the terminal, so there is
// no console to fall back to.
func NewDiagLog(tracePath string) *DiagLog {
	var w io.Writer = io.Discard
	var f *os.File
	if tracePath != "" {
		if file, err := os.OpenFile(tracePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			f = file
			w = file
		}
	}
	return &DiagLog{trace: log.New(w, "sierp ", log.LstdFlags), file: f}
}

// Attach binds the visible output area. Errors logged before an area
// is attached still reach the trace.
func (d *DiagLog) Attach(out *textArea) {
	d.output = out
}

func (d *DiagLog) Log(msg string, isError bool) {
	if isError {
		d.trace.Printf("ERROR %s", msg)
		if d.output != nil {
			d.output.Append(msg)
		}
		return
	}
	d.trace.Print(msg)
}

func (d *DiagLog) Close() {
	if d.file != nil {
		d.file.Close()
	}
}
