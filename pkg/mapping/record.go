// Package mapping turns an organization's coverage spreadsheet into a
// MITRE ATT&CK Navigator layer. The pipeline is a single pass: load
// records from the workbook, score each technique, build the layer
// document, write it to disk.
package mapping

import (
	"regexp"
	"strings"
)

// Record represents one normalized spreadsheet row: a technique and the
// two coverage indicators for it.
type Record struct {
	TechniqueID string `json:"technique_id"` // T#### or T####.###
	DataSource  bool   `json:"data_source"`  // raw data is collected for this technique
	Detection   bool   `json:"detection"`    // a working detection exists
	Comment     string `json:"comment,omitempty"`
}

// techniqueIDPattern matches ATT&CK technique IDs, e.g. T1059 or T1059.001.
var techniqueIDPattern = regexp.MustCompile(`^T\d{4}(\.\d{3})?$`)

// ValidTechniqueID reports whether s is a well-formed ATT&CK technique ID.
func ValidTechniqueID(s string) bool {
	return techniqueIDPattern.MatchString(s)
}

// NormalizeBool maps the varied cell representations seen in real
// spreadsheets (x marks, yes/no, true/false, 1/0) to a strict boolean.
// The second return value is false if the cell is ambiguous.
func NormalizeBool(cell string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "x", "yes", "y", "true", "1":
		return true, true
	case "", "no", "n", "false", "0":
		return false, true
	default:
		return false, false
	}
}
