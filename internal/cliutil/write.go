// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// labelWidth aligns the values written by WriteField.
const labelWidth = 26

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteField writes one "Label: value" line with values aligned.
// An empty value is written as "-".
func WriteField(w io.Writer, label, value string) {
	if value == "" {
		value = "-"
	}
	Writef(w, "%-*s %s\n", labelWidth, label+":", value)
}

// JoinOrDash joins items with ", ", or returns "-" when there are none.
func JoinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
