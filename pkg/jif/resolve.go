package jif

import (
	"fmt"

	"github.com/matzehuels/jifkit/pkg/observability"
)

// Warning kinds emitted through [observability.Trace] by this package.
const (
	WarnPermutationIgnored  = "permutation_ignored"
	WarnPermutationFallback = "permutation_fallback"
	WarnDuplicateThrow      = "duplicate_throw"
	WarnThrowOutOfRange     = "throw_out_of_range"
)

// DefaultDuration is the duration given to throws that do not specify one.
const DefaultDuration = 3

// Resolve fills every absent field of p and derives the repetition block.
// It never fails; structurally odd input (a permutation target that does not
// exist, for example) is reported as a warning.
//
// Defaults, in dependency order:
//   - jugglers: one; label "A", "B", ... by index; becomes itself
//   - limbs: two per juggler; the first N are right hands, the next N left
//     hands, the rest other; owner is index mod N; label from kind
//   - throws: time is the index, duration 3, from is time mod limb count,
//     to is (time+duration) mod limb count, not manipulated
//   - period: max(time)+1, or 0 without throws
//   - limbPermutation: always recomputed (see package docs)
func Resolve(p PartialPattern) *Pattern {
	rawJugglers := p.Jugglers
	if rawJugglers == nil {
		rawJugglers = []PartialJuggler{{}}
	}
	jugglers := make([]Juggler, len(rawJugglers))
	for j, pj := range rawJugglers {
		jugglers[j] = Juggler{
			Label:   valueOr(pj.Label, JugglerName(j)),
			Becomes: valueOr(pj.Becomes, JugglerID(j)),
		}
	}

	n := len(jugglers)
	rawLimbs := p.Limbs
	if rawLimbs == nil {
		rawLimbs = make([]PartialLimb, 2*n)
	}
	limbs := make([]Limb, len(rawLimbs))
	for i, pl := range rawLimbs {
		kind := Other
		switch {
		case i < n:
			kind = RightHand
		case i < 2*n:
			kind = LeftHand
		}
		kind = valueOr(pl.Kind, kind)
		owner := JugglerID(0)
		if n > 0 {
			owner = JugglerID(i % n)
		}
		limbs[i] = Limb{
			Juggler: valueOr(pl.Juggler, owner),
			Kind:    kind,
			Label:   valueOr(pl.Label, kind.Label()),
		}
	}

	nl := len(limbs)
	throws := make([]Throw, len(p.Throws))
	for i, pt := range p.Throws {
		time := valueOr(pt.Time, i)
		duration := valueOr(pt.Duration, DefaultDuration)
		var from, to LimbID
		if nl > 0 {
			from = LimbID(mod(time, nl))
			to = LimbID(mod(time+duration, nl))
		}
		throws[i] = Throw{
			Time:          time,
			Duration:      duration,
			From:          valueOr(pt.From, from),
			To:            valueOr(pt.To, to),
			IsManipulated: valueOr(pt.IsManipulated, false),
		}
	}

	period := inferPeriod(throws)
	if p.Repetition != nil {
		period = valueOr(p.Repetition.Period, period)
		if p.Repetition.LimbPermutation != nil {
			observability.Trace().OnWarning(observability.Warning{
				Kind:    WarnPermutationIgnored,
				Message: "setting limbPermutation is not supported, use juggler becomes instead",
			})
		}
	}

	return &Pattern{
		Jugglers: jugglers,
		Limbs:    limbs,
		Throws:   throws,
		Repetition: Repetition{
			Period:          period,
			LimbPermutation: derivePermutation(jugglers, limbs, throws, period),
		},
	}
}

// LoadWithDefaults is an alias for [Resolve].
func LoadWithDefaults(p PartialPattern) *Pattern { return Resolve(p) }

// InferPeriod returns one more than the largest throw time in p, where
// throws without a time count as their index. It returns 0 without throws.
func InferPeriod(p PartialPattern) int {
	period := 0
	for i, t := range p.Throws {
		period = max(period, valueOr(t.Time, i)+1)
	}
	return period
}

func inferPeriod(throws []Throw) int {
	period := 0
	for _, t := range throws {
		period = max(period, t.Time+1)
	}
	return period
}

func derivePermutation(jugglers []Juggler, limbs []Limb, throws []Throw, period int) []LimbID {
	perm := make([]LimbID, len(limbs))
	if len(limbs) == 0 {
		return perm
	}

	if !IsSynchronous(len(jugglers), throws) {
		// Flat siteswap: limb i continues as the limb that throws period
		// beats later in the round-robin order.
		for i := range limbs {
			perm[i] = LimbID(mod(i-period, len(limbs)))
		}
		return perm
	}

	switchHands := period%2 == 1
	for i, l := range limbs {
		want := l.Kind
		if switchHands {
			want = l.Kind.Opposite()
		}
		target, ok := JugglerID(-1), false
		if l.Juggler >= 0 && int(l.Juggler) < len(jugglers) {
			target, ok = jugglers[l.Juggler].Becomes, true
		}
		next := LimbID(-1)
		if ok {
			next, ok = limbOf(limbs, target, want)
		}
		if !ok {
			observability.Trace().OnWarning(observability.Warning{
				Kind:    WarnPermutationFallback,
				Message: fmt.Sprintf("no %s limb for juggler %d, limb %d continues as itself", want, target, i),
				Fields:  []any{"limb", i, "juggler", target},
			})
			next = LimbID(i)
		}
		perm[i] = next
	}
	return perm
}
