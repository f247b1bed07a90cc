package mapping

// Score ranks coverage strength for a technique. Detection coverage
// dominates data-source coverage: a working detection means full
// coverage even if the raw data feed is not mapped.
type Score int

const (
	ScoreNone       Score = 0 // no visibility
	ScoreDataSource Score = 1 // raw data collected, no detection
	ScoreDetection  Score = 2 // detection in place
)

// ScoreRecord computes the coverage score for a record.
func ScoreRecord(r Record) Score {
	switch {
	case r.Detection:
		return ScoreDetection
	case r.DataSource:
		return ScoreDataSource
	default:
		return ScoreNone
	}
}

func (s Score) String() string {
	switch s {
	case ScoreDetection:
		return "detection"
	case ScoreDataSource:
		return "data-source"
	default:
		return "none"
	}
}

// Palette maps score levels to Navigator display colors. Techniques with
// ScoreNone carry no color and render with the matrix default.
type Palette struct {
	DataSource string `yaml:"data_source"` // ScoreDataSource color
	Detection  string `yaml:"detection"`   // ScoreDetection color
}

// DefaultPalette uses amber for data-source-only coverage and green for
// detection-backed coverage.
func DefaultPalette() Palette {
	return Palette{
		DataSource: "#f6b922",
		Detection:  "#06c452",
	}
}

// Color returns the display color for a score, or "" for ScoreNone.
func (p Palette) Color(s Score) string {
	switch s {
	case ScoreDetection:
		return p.Detection
	case ScoreDataSource:
		return p.DataSource
	default:
		return ""
	}
}
