// Package causal derives the causal interface of each juggler: for every
// beat of the period, whether the juggler's causal line leaves towards
// another juggler, arrives from one, or stays with the juggler.
//
// A throw made at beat t with duration d is causally "due" at
//
//	t + d - Offset(p)
//
// on the receiving limb, wrapped into the period with the limb permutation.
// The offset is a heuristic: 2 beats for synchronous patterns and 4 for
// asynchronous ones, where a juggler throws only every other beat.
package causal

import (
	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
)

// Shape is the interface shape of one beat.
type Shape string

const (
	// Straight beats have no causal exchange with other jugglers.
	Straight Shape = "straight"
	// Outwards beats have a causal line leaving for another juggler.
	Outwards Shape = "outwards"
	// Inwards beats have a throw whose causal line arrives from elsewhere.
	Inwards Shape = "inwards"
)

// Glyph returns a one-character rendering of the shape for text output.
func (s Shape) Glyph() string {
	switch s {
	case Outwards:
		return "v"
	case Inwards:
		return "^"
	default:
		return "-"
	}
}

// Offset returns the causal offset for p.
func Offset(p *jif.Pattern) int {
	if p.IsSynchronous() {
		return 2
	}
	return 4
}

// Interface returns the shape of each beat for juggler j. A beat is
// outwards if one of j's throws is causally due there on another juggler's
// limb; otherwise it is inwards if j throws on that beat without a causal
// line of its own arriving; otherwise it is straight.
func Interface(p *jif.Pattern, j jif.JugglerID) ([]Shape, error) {
	if _, err := p.Juggler(j); err != nil {
		return nil, jiferr.Wrap(jiferr.ErrCodeLookup, err, "causal interface")
	}
	return shapesOf(p, jif.ThrowsByJuggler(p)[j], j), nil
}

func shapesOf(p *jif.Pattern, own []*jif.Throw, j jif.JugglerID) []Shape {
	period := p.Period()
	if period <= 0 {
		return nil
	}

	offset := Offset(p)
	self := make([]bool, period)
	outgoing := make([]bool, period)
	for _, t := range own {
		if t == nil {
			continue
		}
		beat, limb := p.WrapLimb(t.Time+t.Duration-offset, t.To)
		if beat < 0 || beat >= period {
			continue
		}
		if to, err := p.JugglerOf(limb); err == nil && to == j {
			self[beat] = true
		} else {
			outgoing[beat] = true
		}
	}

	shapes := make([]Shape, period)
	for beat := range shapes {
		switch {
		case outgoing[beat]:
			shapes[beat] = Outwards
		case own[beat] != nil && !self[beat]:
			shapes[beat] = Inwards
		default:
			shapes[beat] = Straight
		}
	}
	return shapes
}

// Interfaces returns the interface of every juggler, indexed by juggler.
func Interfaces(p *jif.Pattern) [][]Shape {
	table := jif.ThrowsByJuggler(p)
	out := make([][]Shape, len(table))
	for j, own := range table {
		out[j] = shapesOf(p, own, jif.JugglerID(j))
	}
	return out
}
