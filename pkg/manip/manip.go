// Package manip inserts manipulators into passing patterns.
//
// A manipulator is an extra juggler who stands between the others and
// catches their passes. Each manipulator is described by a list of
// [Instruction] values, one per action:
//
//   - Substitute: the manipulator catches a single pass and throws it on to
//     its original destination on the same beat.
//   - Intercept1b and Intercept2b: the manipulator takes over the receiving
//     juggler's role from the intercepted pass onwards. The displaced
//     juggler becomes the manipulator, with a 1-beat (early) or 2-beat (late)
//     carry at the changeover.
//
// Between actions the manipulator juggles 1-beat hand-to-hand throws, so
// every juggler throws exactly once per beat.
//
// # Usage
//
//	instrs, _ := notation.ParseManipulator("- - sA")
//	withM, err := manip.Add(p, instrs)
//
// [Add] never modifies its input.
package manip

import (
	"cmp"
	"slices"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/observability"
)

// Trace event kinds emitted by [Add].
const (
	EventManipulatorAdded   = "manipulator_added"
	EventInstructionApplied = "instruction_applied"
	EventRolesSwapped       = "roles_swapped"
)

// Add returns a copy of p with one manipulator inserted according to
// instrs. The result keeps p's period and p's limb permutation, extended
// with the manipulator's hands and with the entries of swapped roles
// exchanged.
//
// Errors:
//   - INVALID_INPUT: p has no period, or instrs contains an unknown type
//   - LOOKUP_ERROR: no throw by the named juggler at an instruction's beat
//   - CONSISTENCY_ERROR: the rewrite produced two throws by one juggler on
//     one beat
func Add(p *jif.Pattern, instrs []Instruction) (*jif.Pattern, error) {
	period := p.Period()
	if period <= 0 {
		return nil, jiferr.New(jiferr.ErrCodeInvalidInput, "cannot add a manipulator to a pattern without a period")
	}
	if len(p.Repetition.LimbPermutation) != len(p.Limbs) {
		return nil, jiferr.New(jiferr.ErrCodeInvalidInput,
			"limb permutation covers %d limbs, pattern has %d", len(p.Repetition.LimbPermutation), len(p.Limbs))
	}
	for _, in := range instrs {
		if in.Type != Substitute && !in.Type.IsIntercept() {
			return nil, jiferr.New(jiferr.ErrCodeInvalidInput, "unknown instruction type %q", in.Type)
		}
	}

	d := newDraft(p)
	d.appendManipulator()

	// Move the first intercept to beat 0 so that no carry crosses the
	// relabeling boundary.
	instrs = slices.Clone(instrs)
	if first, ok := firstIntercept(instrs); ok {
		d.shift = first
		d.shiftBy(-first)
		for i, in := range instrs {
			if in.Beat < first {
				instrs[i].From = d.predecessor(in.From)
			}
			instrs[i].Beat = mod(in.Beat-first, period)
		}
	}
	slices.SortStableFunc(instrs, func(a, b Instruction) int { return cmp.Compare(a.Beat, b.Beat) })

	last := -1
	for i, in := range instrs {
		if err := d.fill(last+1, in.Beat); err != nil {
			return nil, err
		}
		ti := d.throwFrom(in.From, in.Beat)
		if ti < 0 {
			return nil, jiferr.New(jiferr.ErrCodeLookup,
				"no throw at beat %d from juggler %d for %s", in.Beat, in.From, in.Type)
		}
		d.throws[ti].IsManipulated = true

		if in.Type == Substitute {
			d.substitute(ti)
			last = in.Beat
		} else {
			intercepted, end, err := d.intercept(ti, in.Type == Intercept2b)
			if err != nil {
				return nil, err
			}
			manip := d.manip
			if err := d.swapRoles(intercepted); err != nil {
				return nil, err
			}
			for j := range instrs[i+1:] {
				if instrs[i+1+j].From == intercepted {
					instrs[i+1+j].From = manip
				}
			}
			last = end
		}

		observability.Trace().OnEvent(observability.Event{
			Kind:   EventInstructionApplied,
			Fields: []any{"type", string(in.Type), "beat", in.Beat, "from", int(in.From)},
		})
	}
	if err := d.fill(last+1, period); err != nil {
		return nil, err
	}

	if d.shift > 0 {
		d.shiftBy(d.shift)
	}
	return d.build(), nil
}

// AddAll applies each manipulator in order, so later manipulators see
// earlier ones as regular jugglers.
func AddAll(p *jif.Pattern, manipulators [][]Instruction) (*jif.Pattern, error) {
	for i, instrs := range manipulators {
		next, err := Add(p, instrs)
		if err != nil {
			return nil, jiferr.Wrap(jiferr.GetCode(err), err, "manipulator %d", i+1)
		}
		p = next
	}
	return p, nil
}

func firstIntercept(instrs []Instruction) (int, bool) {
	first, ok := 0, false
	for _, in := range instrs {
		if in.Type.IsIntercept() && (!ok || in.Beat < first) {
			first, ok = in.Beat, true
		}
	}
	return first, ok
}

// substitute redirects throw ti to the manipulator, who relays it to the
// original destination on the same beat. The catching hand is opposite to
// the relaying hand since it throws one beat later.
func (d *draft) substitute(ti int) {
	orig := d.throws[ti]
	kind := d.kindOf(orig.From)
	d.throws = append(d.throws, jif.Throw{
		Time:          orig.Time,
		Duration:      orig.Duration,
		From:          d.sameHand(kind),
		To:            orig.To,
		IsManipulated: true,
	})
	d.throws[ti].To = d.otherHand(kind)
	d.throws[ti].Duration = 1
}

// intercept reroutes the receiver of throw ti to the manipulator from the
// causal threshold onwards, the first beat on which the receiver no longer
// makes their normal throw. It returns the intercepted juggler and the beat
// of the carry.
func (d *draft) intercept(ti int, late bool) (jif.JugglerID, int, error) {
	orig := d.throws[ti]
	intercepted := d.jugglerOf(orig.To)
	threshold := orig.Time + orig.Duration - 2

	var delayed []jif.Throw
	n := len(d.throws)
	for i := 0; i < n; i++ {
		t := &d.throws[i]
		fromJ, toJ := d.jugglerOf(t.From), d.jugglerOf(t.To)
		causal := t.Time + t.Duration - 2

		// Everything landing from the threshold on goes to the manipulator.
		if toJ == intercepted && causal >= threshold {
			if causal == threshold && i != ti {
				return 0, 0, jiferr.New(jiferr.ErrCodeConsistency,
					"throw at beat %d lands on juggler %d together with the intercepted throw", t.Time, intercepted)
			}
			t.To = d.sameHand(d.kindOf(t.To))
		}

		if fromJ != intercepted {
			continue
		}
		delta := t.Time - threshold
		kind := d.kindOf(t.From)
		if late && delta == 1 {
			t.IsManipulated = true
		}
		switch {
		case delta > 1 || (!late && delta == 1):
			t.From = d.sameHand(kind)
		case delta == 0 && late:
			// The juggler holds (2) and the manipulator throws one beat later.
			delayed = append(delayed, jif.Throw{Time: t.Time, Duration: 2, From: t.From, To: t.From})
			t.Time++
			t.Duration--
			t.From = d.otherHand(kind)
		case delta == 0:
			t.IsManipulated = true
		}
	}
	d.throws = append(d.throws, delayed...)

	if err := d.fill(orig.Time, threshold+1); err != nil {
		return 0, 0, err
	}
	if late {
		return intercepted, threshold + 1, nil
	}
	return intercepted, threshold, nil
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
