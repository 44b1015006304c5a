package pipeline

import (
	"bytes"
	"context"
	"fmt"

	jifio "github.com/matzehuels/jifkit/pkg/io"
	"github.com/matzehuels/jifkit/pkg/orbits"
)

// RenderArtifact renders res in one artifact format without caching.
func RenderArtifact(ctx context.Context, res *Result, format string) ([]byte, error) {
	if err := ValidateArtifact(format); err != nil {
		return nil, err
	}
	switch format {
	case ArtifactDOT:
		return []byte(orbits.ToDOT(res.Pattern, res.Orbits)), nil
	case ArtifactSVG:
		data, err := orbits.RenderSVG(ctx, orbits.ToDOT(res.Pattern, res.Orbits))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		if err := jifio.WriteJSON(res.Pattern, &buf); err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		return buf.Bytes(), nil
	}
}
