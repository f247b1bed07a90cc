package mapping

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Columns names the expected header cells of the coverage sheet. Matching
// is case-insensitive. Comment is optional; the others are required.
type Columns struct {
	TechniqueID string `yaml:"technique_id"`
	DataSource  string `yaml:"data_source"`
	Detection   string `yaml:"detection"`
	Comment     string `yaml:"comment"`
}

// DefaultColumns is the conventional header layout of the mapping workbook.
func DefaultColumns() Columns {
	return Columns{
		TechniqueID: "Technique ID",
		DataSource:  "Data Source",
		Detection:   "Detection",
		Comment:     "Comment",
	}
}

// LoadOptions selects the worksheet and header layout to read.
type LoadOptions struct {
	Sheet   string
	Columns Columns
}

// LoadRecords reads the coverage sheet from the workbook at path and
// returns one Record per parseable row. Rows that cannot be interpreted
// are skipped and reported as warnings; a missing file, missing sheet, or
// missing required column is fatal.
func LoadRecords(path string, opts LoadOptions) ([]Record, []RowWarning, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(opts.Sheet)
	if err != nil || idx < 0 {
		return nil, nil, &FormatError{Sheet: opts.Sheet}
	}

	rows, err := f.GetRows(opts.Sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", opts.Sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, &FormatError{Sheet: opts.Sheet, Column: opts.Columns.TechniqueID}
	}

	cols, err := resolveColumns(rows[0], opts)
	if err != nil {
		return nil, nil, err
	}

	var records []Record
	var warnings []RowWarning
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		id := strings.TrimSpace(cellAt(row, cols.techniqueID))
		if !ValidTechniqueID(id) {
			warnings = append(warnings, RowWarning{Row: rowNum, Cell: id, Reason: "malformed technique ID"})
			continue
		}

		ds, ok := NormalizeBool(cellAt(row, cols.dataSource))
		if !ok {
			warnings = append(warnings, RowWarning{Row: rowNum, Cell: cellAt(row, cols.dataSource), Reason: "ambiguous data source indicator"})
			continue
		}

		det, ok := NormalizeBool(cellAt(row, cols.detection))
		if !ok {
			warnings = append(warnings, RowWarning{Row: rowNum, Cell: cellAt(row, cols.detection), Reason: "ambiguous detection indicator"})
			continue
		}

		rec := Record{TechniqueID: id, DataSource: ds, Detection: det}
		if cols.comment >= 0 {
			rec.Comment = strings.TrimSpace(cellAt(row, cols.comment))
		}
		records = append(records, rec)
		Debugf("row %d: %s dataSource=%v detection=%v", rowNum, id, ds, det)
	}

	return records, warnings, nil
}

// columnIndexes holds resolved 0-based column positions. comment is -1
// when the workbook has no comment column.
type columnIndexes struct {
	techniqueID int
	dataSource  int
	detection   int
	comment     int
}

func resolveColumns(header []string, opts LoadOptions) (columnIndexes, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	cols := columnIndexes{
		techniqueID: find(opts.Columns.TechniqueID),
		dataSource:  find(opts.Columns.DataSource),
		detection:   find(opts.Columns.Detection),
		comment:     -1,
	}
	if opts.Columns.Comment != "" {
		cols.comment = find(opts.Columns.Comment)
	}

	switch {
	case cols.techniqueID < 0:
		return cols, &FormatError{Sheet: opts.Sheet, Column: opts.Columns.TechniqueID}
	case cols.dataSource < 0:
		return cols, &FormatError{Sheet: opts.Sheet, Column: opts.Columns.DataSource}
	case cols.detection < 0:
		return cols, &FormatError{Sheet: opts.Sheet, Column: opts.Columns.Detection}
	}
	return cols, nil
}

// cellAt returns the cell at index i, or "" when the row is short.
// excelize trims trailing empty cells from rows.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
