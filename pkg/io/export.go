package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/jifkit/pkg/jif"
)

// WriteJSON encodes a resolved pattern as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(p *jif.Pattern, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a pattern to a JSON file at path.
func ExportJSON(p *jif.Pattern, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(p, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
