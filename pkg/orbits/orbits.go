// Package orbits discovers the closed paths that objects follow through a
// pattern.
//
// Every (limb, beat) cell with an outgoing throw has exactly one successor:
// the cell where the thrown object is thrown next,
//
//	(beat', limb') = WrapLimb(beat + duration, to)
//
// so the throw graph is a functional graph whose cycles are the orbits.
// [Compute] walks it iteratively, assigning each cell to the orbit that
// first reaches it. A walk that runs into a cell owned by another orbit, or
// into a cell with no throw, means the pattern is malformed and fails with
// a CONSISTENCY_ERROR.
package orbits

import (
	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/observability"
)

// Trace event kinds emitted by [Compute].
const (
	EventOrbitStarted = "orbit_started"
	EventOrbitClosed  = "orbit_closed"
)

// Orbit is the ordered sequence of throws one object makes over the
// pattern, starting with the throw of smallest (time, limb).
type Orbit []jif.Throw

// Objects returns how many objects travel the orbit: the total duration of
// its throws divided by the period.
func (o Orbit) Objects(period int) int {
	if period <= 0 {
		return 0
	}
	total := 0
	for _, t := range o {
		total += t.Duration
	}
	return total / period
}

// Compute returns every orbit of p. Cells are scanned limb by limb, beat by
// beat, so the order of the result is deterministic.
func Compute(p *jif.Pattern) ([]Orbit, error) {
	period := p.Period()
	nLimbs := len(p.Limbs)
	table := jif.ThrowsByLimb(p)

	// owner[limb][beat] is the index of the orbit the cell belongs to, or -1.
	owner := make([][]int, nLimbs)
	for l := range owner {
		owner[l] = make([]int, max(period, 0))
		for t := range owner[l] {
			owner[l][t] = -1
		}
	}

	var orbits []Orbit
	for startL := 0; startL < nLimbs; startL++ {
		for startT := 0; startT < period; startT++ {
			if table.At(startL, startT) == nil || owner[startL][startT] >= 0 {
				continue
			}
			id := len(orbits)
			observability.Trace().OnEvent(observability.Event{
				Kind:   EventOrbitStarted,
				Fields: []any{"orbit", id, "limb", startL, "beat", startT},
			})

			var orbit Orbit
			l, t := startL, startT
			for owner[l][t] != id {
				if owner[l][t] >= 0 {
					return nil, jiferr.New(jiferr.ErrCodeConsistency,
						"arrived at limb %d at beat %d, which belongs to orbit %d, while tracing orbit %d", l, t, owner[l][t], id)
				}
				th := table.At(l, t)
				if th == nil {
					return nil, jiferr.New(jiferr.ErrCodeConsistency,
						"arrived at limb %d at beat %d that has no outgoing throw", l, t)
				}
				orbit = append(orbit, *th)
				owner[l][t] = id

				nextT, nextL := p.WrapLimb(t+th.Duration, th.To)
				if nextL < 0 || int(nextL) >= nLimbs || nextT < 0 || nextT >= period {
					return nil, jiferr.New(jiferr.ErrCodeConsistency,
						"throw from limb %d at beat %d lands outside the pattern (limb %d, beat %d)", l, t, nextL, nextT)
				}
				l, t = int(nextL), nextT
			}

			orbit = canonical(orbit, nLimbs)
			observability.Trace().OnEvent(observability.Event{
				Kind:   EventOrbitClosed,
				Fields: []any{"orbit", id, "length", len(orbit)},
			})
			orbits = append(orbits, orbit)
		}
	}
	return orbits, nil
}

// canonical rotates o so it starts at the first throw with the smallest
// time*nLimbs + from.
func canonical(o Orbit, nLimbs int) Orbit {
	start := 0
	for i, t := range o {
		if key(t, nLimbs) < key(o[start], nLimbs) {
			start = i
		}
	}
	return append(o[start:len(o):len(o)], o[:start]...)
}

func key(t jif.Throw, nLimbs int) int {
	return t.Time*nLimbs + int(t.From)
}

// Objects returns the total number of objects in the pattern.
func Objects(orbits []Orbit, period int) int {
	n := 0
	for _, o := range orbits {
		n += o.Objects(period)
	}
	return n
}
