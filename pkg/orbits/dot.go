package orbits

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/jifkit/pkg/jif"
)

// palette cycles colors across orbits.
var palette = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231", "#911eb4",
	"#42d4f4", "#f032e6", "#9a6324", "#469990", "#808000",
}

// ToDOT converts a pattern and its orbits to Graphviz DOT format. Each
// (limb, beat) cell with a throw becomes a node, and each throw an edge to
// the cell where the object is thrown next, colored by orbit. Limbs are laid
// out as rows, one per rank.
func ToDOT(p *jif.Pattern, orbits []Orbit) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for l, limb := range p.Limbs {
		cells := make([]string, 0, p.Period())
		for _, o := range orbits {
			for _, t := range o {
				if int(t.From) == l {
					cells = append(cells, fmt.Sprintf("%q", nodeID(t.Time, t.From)))
				}
			}
		}
		if len(cells) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "  subgraph \"cluster_%d\" { rank=same; label=%q; %s; }\n",
			l, limbLabel(p, limb), strings.Join(cells, "; "))
	}

	buf.WriteString("\n")
	for i, o := range orbits {
		color := palette[i%len(palette)]
		for _, t := range o {
			fmt.Fprintf(&buf, "  %q [label=%q, color=%q];\n", nodeID(t.Time, t.From), fmt.Sprintf("%d", t.Time), color)
		}
		for _, t := range o {
			nextT, nextL := p.WrapLimb(t.Time+t.Duration, t.To)
			attrs := []string{fmt.Sprintf("color=%q", color), fmt.Sprintf("label=%q", fmt.Sprintf("%d", t.Duration))}
			if t.IsManipulated {
				attrs = append(attrs, "style=dashed")
			}
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID(t.Time, t.From), nodeID(nextT, nextL), strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(time int, limb jif.LimbID) string {
	return fmt.Sprintf("%d@%d", limb, time)
}

func limbLabel(p *jif.Pattern, l jif.Limb) string {
	return p.JugglerLabel(l.Juggler) + l.Kind.Label()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
