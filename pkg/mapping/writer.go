package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteLayer serializes the layer as indented JSON to path. The document
// is written to a temporary file in the destination directory and renamed
// into place, so the target is either fully written or untouched.
func WriteLayer(layer *Layer, path string) error {
	data, err := json.MarshalIndent(layer, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling layer: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	tmp, err := os.CreateTemp(dir, ".layer-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// LayerFilename derives the default output filename from the layer name:
// lowercased, spaces replaced with dashes, .json appended.
func LayerFilename(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-") + ".json"
}
