package manip

import (
	"slices"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/observability"
)

// draft is a mutable working copy of a pattern while a manipulator is being
// inserted. It tracks which juggler currently plays the manipulator role and
// that juggler's hands.
type draft struct {
	jugglers []jif.Juggler
	limbs    []jif.Limb
	throws   []jif.Throw
	rep      jif.Repetition

	manip jif.JugglerID
	right jif.LimbID
	left  jif.LimbID

	// shift is how many beats the pattern was moved earlier.
	shift int
}

func newDraft(p *jif.Pattern) *draft {
	c := p.Clone()
	return &draft{
		jugglers: c.Jugglers,
		limbs:    c.Limbs,
		throws:   c.Throws,
		rep:      c.Repetition,
	}
}

// appendManipulator adds a new juggler with a right and a left hand. The
// manipulator becomes itself and its hands continue as themselves, or as
// each other when the period is odd.
func (d *draft) appendManipulator() {
	label := NextLabel(d.jugglers)
	d.manip = jif.JugglerID(len(d.jugglers))
	d.right = jif.LimbID(len(d.limbs))
	d.left = d.right + 1

	d.jugglers = append(d.jugglers, jif.Juggler{Label: label, Becomes: d.manip})
	d.limbs = append(d.limbs,
		jif.Limb{Juggler: d.manip, Kind: jif.RightHand, Label: jif.RightHand.Label()},
		jif.Limb{Juggler: d.manip, Kind: jif.LeftHand, Label: jif.LeftHand.Label()},
	)
	if d.rep.Period%2 == 1 {
		d.rep.LimbPermutation = append(d.rep.LimbPermutation, d.left, d.right)
	} else {
		d.rep.LimbPermutation = append(d.rep.LimbPermutation, d.right, d.left)
	}

	observability.Trace().OnEvent(observability.Event{
		Kind:   EventManipulatorAdded,
		Fields: []any{"label", label, "juggler", int(d.manip)},
	})
}

func (d *draft) jugglerOf(l jif.LimbID) jif.JugglerID {
	if l < 0 || int(l) >= len(d.limbs) {
		return -1
	}
	return d.limbs[l].Juggler
}

func (d *draft) kindOf(l jif.LimbID) jif.LimbKind {
	if l < 0 || int(l) >= len(d.limbs) {
		return jif.Other
	}
	return d.limbs[l].Kind
}

// sameHand returns the manipulator's hand matching kind; anything that is
// not a right hand maps to the left.
func (d *draft) sameHand(kind jif.LimbKind) jif.LimbID {
	if kind == jif.RightHand {
		return d.right
	}
	return d.left
}

func (d *draft) otherHand(kind jif.LimbKind) jif.LimbID {
	if kind == jif.RightHand {
		return d.left
	}
	return d.right
}

// throwFrom returns the index of the first throw made by juggler j at time,
// or -1.
func (d *draft) throwFrom(j jif.JugglerID, time int) int {
	return slices.IndexFunc(d.throws, func(t jif.Throw) bool {
		return t.Time == time && d.jugglerOf(t.From) == j
	})
}

func (d *draft) limbOf(j jif.JugglerID, kind jif.LimbKind) (jif.LimbID, error) {
	for i, l := range d.limbs {
		if l.Juggler == j && l.Kind == kind {
			return jif.LimbID(i), nil
		}
	}
	return -1, jiferr.New(jiferr.ErrCodeLookup, "juggler %d has no %s", j, kind)
}

// predecessor returns the first juggler that becomes j, or -1.
func (d *draft) predecessor(j jif.JugglerID) jif.JugglerID {
	i := slices.IndexFunc(d.jugglers, func(other jif.Juggler) bool { return other.Becomes == j })
	return jif.JugglerID(i)
}

// fill adds 1-beat hand-to-hand throws for the manipulator over [from, to).
// Even beats (counted before any shift) go right to left.
func (d *draft) fill(from, to int) error {
	for t := from; t < to; t++ {
		if d.throwFrom(d.manip, t) >= 0 {
			return jiferr.New(jiferr.ErrCodeConsistency,
				"manipulator %s already throws at beat %d", d.jugglers[d.manip].Label, t)
		}
		throwKind, catchKind := jif.RightHand, jif.LeftHand
		if (t+d.shift)%2 != 0 {
			throwKind, catchKind = catchKind, throwKind
		}
		fromLimb, err := d.limbOf(d.manip, throwKind)
		if err != nil {
			return err
		}
		toLimb, err := d.limbOf(d.manip, catchKind)
		if err != nil {
			return err
		}
		d.throws = append(d.throws, jif.Throw{Time: t, Duration: 1, From: fromLimb, To: toLimb})
	}
	return nil
}

// shiftBy moves every throw delta beats in time, wrapping throw and catch
// limbs through the current limb permutation.
func (d *draft) shiftBy(delta int) {
	for i := range d.throws {
		t := &d.throws[i]
		time := t.Time + delta
		t.Time, t.From = jif.WrapLimb(time, t.From, d.rep)
		_, t.To = jif.WrapLimb(time, t.To, d.rep)
	}
}

// swapRoles exchanges the manipulator's role with juggler j: their becomes
// targets and the permutation entries of their hands are swapped, and j is
// the manipulator from now on.
func (d *draft) swapRoles(j jif.JugglerID) error {
	if j < 0 || int(j) >= len(d.jugglers) {
		return jiferr.New(jiferr.ErrCodeLookup, "unknown juggler %d", j)
	}
	right, err := d.limbOf(j, jif.RightHand)
	if err != nil {
		return err
	}
	left, err := d.limbOf(j, jif.LeftHand)
	if err != nil {
		return err
	}

	m := d.manip
	d.jugglers[m].Becomes, d.jugglers[j].Becomes = d.jugglers[j].Becomes, d.jugglers[m].Becomes
	perm := d.rep.LimbPermutation
	perm[d.right], perm[right] = perm[right], perm[d.right]
	perm[d.left], perm[left] = perm[left], perm[d.left]

	observability.Trace().OnEvent(observability.Event{
		Kind:   EventRolesSwapped,
		Fields: []any{"manipulator", d.jugglers[m].Label, "juggler", d.jugglers[j].Label},
	})
	d.manip, d.right, d.left = j, right, left
	return nil
}

// build resolves the draft into a pattern. Defaults are filled by
// [jif.Resolve], but the limb permutation is the one maintained on the
// draft: for synchronous bases it equals the one derived from becomes, and
// for flat siteswaps it keeps the round-robin shift that a re-derivation
// would lose once the manipulator's throws make every beat shared.
func (d *draft) build() *jif.Pattern {
	p := &jif.Pattern{Jugglers: d.jugglers, Limbs: d.limbs, Throws: d.throws, Repetition: d.rep}
	out := jif.Resolve(p.Partial())
	out.Repetition.LimbPermutation = slices.Clone(d.rep.LimbPermutation)
	return out
}
