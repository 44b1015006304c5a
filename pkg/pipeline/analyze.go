package pipeline

import (
	"github.com/matzehuels/jifkit/pkg/causal"
	"github.com/matzehuels/jifkit/pkg/cycles"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/manip"
	"github.com/matzehuels/jifkit/pkg/notation"
	"github.com/matzehuels/jifkit/pkg/orbits"
)

// Manipulate parses each manipulator line and inserts the manipulators into
// p in order. p is not modified.
func Manipulate(p *jif.Pattern, lines []string) (*jif.Pattern, error) {
	if len(lines) == 0 {
		return p, nil
	}
	instrs, err := notation.ParseManipulators(lines)
	if err != nil {
		return nil, err
	}
	return manip.AddAll(p, instrs)
}

// Analyze computes the orbits, relabeling cycles and causal interfaces of p. The returned
// result carries no run metadata.
func Analyze(p *jif.Pattern) (*Result, error) {
	found, err := orbits.Compute(p)
	if err != nil {
		return nil, err
	}
	return &Result{
		Pattern:      p,
		Orbits:       found,
		Objects:      orbits.Objects(found, p.Period()),
		JugglerCycle: cycles.Juggler(p),
		LimbCycle:    cycles.Limb(p),
		Synchronous:  p.IsSynchronous(),
		Interfaces:   causal.Interfaces(p),
	}, nil
}
