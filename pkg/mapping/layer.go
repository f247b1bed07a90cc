package mapping

import "sort"

// Versions pins the Navigator schema versions the layer targets.
type Versions struct {
	Attack    string `json:"attack" yaml:"attack"`
	Navigator string `json:"navigator" yaml:"navigator"`
	Layer     string `json:"layer" yaml:"layer"`
}

// Filters limits which matrix platforms the Navigator renders.
type Filters struct {
	Platforms []string `json:"platforms"`
}

// Gradient configures the Navigator score-to-color ramp.
type Gradient struct {
	Colors   []string `json:"colors"`
	MinValue int      `json:"minValue"`
	MaxValue int      `json:"maxValue"`
}

// LegendItem labels a color in the Navigator legend.
type LegendItem struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Technique is one entry of the layer's techniques array.
type Technique struct {
	TechniqueID string `json:"techniqueID"`
	Score       int    `json:"score"`
	Color       string `json:"color,omitempty"`
	Comment     string `json:"comment,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// Layer is the document the ATT&CK Navigator loads. Field order follows
// the layer format specification so serialized output diffs cleanly.
type Layer struct {
	Name                          string       `json:"name"`
	Versions                      Versions     `json:"versions"`
	Domain                        string       `json:"domain"`
	Description                   string       `json:"description"`
	Filters                       Filters      `json:"filters"`
	Sorting                       int          `json:"sorting"`
	HideDisabled                  bool         `json:"hideDisabled"`
	Techniques                    []Technique  `json:"techniques"`
	Gradient                      Gradient     `json:"gradient"`
	LegendItems                   []LegendItem `json:"legendItems"`
	ShowTacticRowBackground       bool         `json:"showTacticRowBackground"`
	TacticRowBackground           string       `json:"tacticRowBackground"`
	SelectTechniquesAcrossTactics bool         `json:"selectTechniquesAcrossTactics"`
}

// Meta carries the layer's descriptive fields, normally filled from the
// config file.
type Meta struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Domain      string   `yaml:"domain"`
	Versions    Versions `yaml:"versions"`
}

// DefaultMeta returns the built-in layer metadata.
func DefaultMeta() Meta {
	return Meta{
		Name:        "Coverage Mapping",
		Description: "Data source and detection coverage per ATT&CK technique",
		Domain:      "enterprise-attack",
		Versions: Versions{
			Attack:    "14",
			Navigator: "4.9.1",
			Layer:     "4.5",
		},
	}
}

// BuildLayer assembles the Navigator layer from scored records. Duplicate
// technique IDs are resolved first-wins; the IDs of dropped later rows are
// returned so callers can surface them. Entries are sorted ascending by
// technique ID for deterministic output.
func BuildLayer(records []Record, meta Meta, palette Palette) (*Layer, []string) {
	seen := make(map[string]bool, len(records))
	var duplicates []string

	techniques := make([]Technique, 0, len(records))
	for _, r := range records {
		if seen[r.TechniqueID] {
			duplicates = append(duplicates, r.TechniqueID)
			continue
		}
		seen[r.TechniqueID] = true

		score := ScoreRecord(r)
		techniques = append(techniques, Technique{
			TechniqueID: r.TechniqueID,
			Score:       int(score),
			Color:       palette.Color(score),
			Comment:     r.Comment,
			Enabled:     true,
		})
	}

	sort.Slice(techniques, func(i, j int) bool {
		return techniques[i].TechniqueID < techniques[j].TechniqueID
	})

	layer := &Layer{
		Name:        meta.Name,
		Versions:    meta.Versions,
		Domain:      meta.Domain,
		Description: meta.Description,
		Filters: Filters{
			Platforms: []string{"Windows", "Linux", "macOS"},
		},
		Sorting:      0,
		HideDisabled: false,
		Techniques:   techniques,
		Gradient: Gradient{
			Colors:   []string{"#ff6666", palette.DataSource, palette.Detection},
			MinValue: int(ScoreNone),
			MaxValue: int(ScoreDetection),
		},
		LegendItems: []LegendItem{
			{Label: "Data source available", Color: palette.DataSource},
			{Label: "Detection in place", Color: palette.Detection},
		},
		ShowTacticRowBackground:       false,
		TacticRowBackground:           "#dddddd",
		SelectTechniquesAcrossTactics: true,
	}
	return layer, duplicates
}
