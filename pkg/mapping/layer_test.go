package mapping

import "testing"

func TestBuildLayer(t *testing.T) {
	records := []Record{
		{TechniqueID: "T1059", DataSource: true},
		{TechniqueID: "T1055", DataSource: true, Detection: true},
		{TechniqueID: "T1003", Comment: "no visibility yet"},
	}

	layer, duplicates := BuildLayer(records, DefaultMeta(), DefaultPalette())
	if len(duplicates) != 0 {
		t.Fatalf("expected no duplicates, got %v", duplicates)
	}
	if layer.Domain != "enterprise-attack" {
		t.Errorf("domain = %q, want enterprise-attack", layer.Domain)
	}
	if len(layer.Techniques) != 3 {
		t.Fatalf("expected 3 techniques, got %d", len(layer.Techniques))
	}

	// Sorted ascending by technique ID.
	wantOrder := []string{"T1003", "T1055", "T1059"}
	for i, id := range wantOrder {
		if layer.Techniques[i].TechniqueID != id {
			t.Errorf("techniques[%d] = %s, want %s", i, layer.Techniques[i].TechniqueID, id)
		}
	}

	p := DefaultPalette()
	checks := []struct {
		idx   int
		score int
		color string
	}{
		{0, 0, ""},           // T1003: nothing
		{1, 2, p.Detection},  // T1055: detection
		{2, 1, p.DataSource}, // T1059: data source only
	}
	for _, c := range checks {
		tech := layer.Techniques[c.idx]
		if tech.Score != c.score || tech.Color != c.color {
			t.Errorf("%s: score=%d color=%q, want score=%d color=%q", tech.TechniqueID, tech.Score, tech.Color, c.score, c.color)
		}
		if !tech.Enabled {
			t.Errorf("%s: not enabled", tech.TechniqueID)
		}
	}

	if layer.Techniques[0].Comment != "no visibility yet" {
		t.Errorf("T1003 comment = %q", layer.Techniques[0].Comment)
	}
}

func TestBuildLayerDuplicatesFirstWins(t *testing.T) {
	records := []Record{
		{TechniqueID: "T1059", DataSource: true},
		{TechniqueID: "T1059", DataSource: true, Detection: true},
		{TechniqueID: "T1059"},
	}

	layer, duplicates := BuildLayer(records, DefaultMeta(), DefaultPalette())
	if len(layer.Techniques) != 1 {
		t.Fatalf("expected 1 technique, got %d", len(layer.Techniques))
	}
	if len(duplicates) != 2 {
		t.Fatalf("expected 2 duplicates, got %v", duplicates)
	}
	// First occurrence (data source only) wins.
	if layer.Techniques[0].Score != int(ScoreDataSource) {
		t.Errorf("score = %d, want %d (first occurrence)", layer.Techniques[0].Score, ScoreDataSource)
	}
}

func TestBuildLayerGradientSpansScoreRange(t *testing.T) {
	layer, _ := BuildLayer(nil, DefaultMeta(), DefaultPalette())
	if layer.Gradient.MinValue != int(ScoreNone) || layer.Gradient.MaxValue != int(ScoreDetection) {
		t.Errorf("gradient range = [%d, %d], want [%d, %d]",
			layer.Gradient.MinValue, layer.Gradient.MaxValue, ScoreNone, ScoreDetection)
	}
	if len(layer.LegendItems) != 2 {
		t.Errorf("expected 2 legend items, got %d", len(layer.LegendItems))
	}
}
