package mapping

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the mapping spreadsheet path does not resolve
// to a readable file.
var ErrInputNotFound = errors.New("input file not found")

// ErrOutputWrite indicates the layer file could not be written.
var ErrOutputWrite = errors.New("output not writable")

// FormatError indicates the workbook is missing the expected sheet or one
// of the required header columns.
type FormatError struct {
	Sheet  string
	Column string
}

func (e *FormatError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("sheet %q is missing required column %q", e.Sheet, e.Column)
	}
	return fmt.Sprintf("workbook has no sheet named %q", e.Sheet)
}

// RowWarning records a single spreadsheet row that could not be interpreted
// as a technique record. Warnings are non-fatal; the row is skipped.
type RowWarning struct {
	Row    int    // 1-based row number in the sheet
	Cell   string // cell value that failed to parse
	Reason string
}

func (w RowWarning) String() string {
	return fmt.Sprintf("row %d: %s (value %q)", w.Row, w.Reason, w.Cell)
}
