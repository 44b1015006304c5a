package jif

import (
	"slices"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
)

// JugglerID is the index of a juggler within [Pattern.Jugglers].
type JugglerID int

// LimbID is the index of a limb within [Pattern.Limbs].
type LimbID int

// LimbKind identifies what kind of limb throws or catches.
type LimbKind string

const (
	RightHand LimbKind = "right_hand"
	LeftHand  LimbKind = "left_hand"
	Other     LimbKind = "other"
)

// Label returns the short display label for the kind ("R", "L" or "O").
func (k LimbKind) Label() string {
	switch k {
	case RightHand:
		return "R"
	case LeftHand:
		return "L"
	default:
		return "O"
	}
}

// Opposite swaps right and left hands. Other limbs have no opposite and are
// returned unchanged.
func (k LimbKind) Opposite() LimbKind {
	switch k {
	case RightHand:
		return LeftHand
	case LeftHand:
		return RightHand
	default:
		return k
	}
}

// Valid reports whether k is one of the known limb kinds.
func (k LimbKind) Valid() bool {
	return k == RightHand || k == LeftHand || k == Other
}

// Juggler is a named role in the pattern.
type Juggler struct {
	Label string `json:"label"`
	// Becomes is the juggler whose role this juggler's owner takes on after
	// one period.
	Becomes JugglerID `json:"becomes"`
}

// Limb is a throwing and catching point owned by exactly one juggler.
type Limb struct {
	Juggler JugglerID `json:"juggler"`
	Kind    LimbKind  `json:"kind"`
	Label   string    `json:"label"`
}

// Throw is one scheduled event: an object leaves From at Time and lands on
// To Duration beats later.
type Throw struct {
	Time     int    `json:"time"`
	Duration int    `json:"duration"`
	From     LimbID `json:"from"`
	To       LimbID `json:"to"`
	// IsManipulated marks throws added or altered by manipulator insertion.
	IsManipulated bool `json:"isManipulated"`
}

// Repetition describes how the pattern repeats.
type Repetition struct {
	Period int `json:"period"`
	// LimbPermutation[i] is the limb that continues limb i's schedule one
	// period later.
	LimbPermutation []LimbID `json:"limbPermutation"`
}

// Pattern is a fully specified pattern. Every field is set; use [Resolve]
// to build one from a [PartialPattern].
type Pattern struct {
	Jugglers   []Juggler  `json:"jugglers"`
	Limbs      []Limb     `json:"limbs"`
	Throws     []Throw    `json:"throws"`
	Repetition Repetition `json:"repetition"`
}

// Clone returns an independent deep copy of the pattern.
func (p *Pattern) Clone() *Pattern {
	return &Pattern{
		Jugglers: slices.Clone(p.Jugglers),
		Limbs:    slices.Clone(p.Limbs),
		Throws:   slices.Clone(p.Throws),
		Repetition: Repetition{
			Period:          p.Repetition.Period,
			LimbPermutation: slices.Clone(p.Repetition.LimbPermutation),
		},
	}
}

// Period returns the pattern's period in beats.
func (p *Pattern) Period() int { return p.Repetition.Period }

// Juggler returns the juggler with the given index.
func (p *Pattern) Juggler(id JugglerID) (Juggler, error) {
	if id < 0 || int(id) >= len(p.Jugglers) {
		return Juggler{}, jiferr.New(jiferr.ErrCodeLookup, "unknown juggler %d (pattern has %d)", id, len(p.Jugglers))
	}
	return p.Jugglers[id], nil
}

// Limb returns the limb with the given index.
func (p *Pattern) Limb(id LimbID) (Limb, error) {
	if id < 0 || int(id) >= len(p.Limbs) {
		return Limb{}, jiferr.New(jiferr.ErrCodeLookup, "unknown limb %d (pattern has %d)", id, len(p.Limbs))
	}
	return p.Limbs[id], nil
}

// JugglerOf returns the owner of a limb.
func (p *Pattern) JugglerOf(id LimbID) (JugglerID, error) {
	l, err := p.Limb(id)
	if err != nil {
		return 0, err
	}
	return l.Juggler, nil
}

// LimbOf returns the first limb of kind owned by juggler j.
func (p *Pattern) LimbOf(j JugglerID, kind LimbKind) (LimbID, bool) {
	return limbOf(p.Limbs, j, kind)
}

func limbOf(limbs []Limb, j JugglerID, kind LimbKind) (LimbID, bool) {
	for i, l := range limbs {
		if l.Juggler == j && l.Kind == kind {
			return LimbID(i), true
		}
	}
	return -1, false
}

// JugglerLabel returns the label of juggler id, or "?" if it does not exist.
func (p *Pattern) JugglerLabel(id JugglerID) string {
	if j, err := p.Juggler(id); err == nil {
		return j.Label
	}
	return "?"
}

// JugglerLabels returns all juggler labels in index order.
func (p *Pattern) JugglerLabels() []string {
	labels := make([]string, len(p.Jugglers))
	for i, j := range p.Jugglers {
		labels[i] = j.Label
	}
	return labels
}

// JugglerPermutation returns the becomes relabeling as plain integers.
func (p *Pattern) JugglerPermutation() []int {
	perm := make([]int, len(p.Jugglers))
	for i, j := range p.Jugglers {
		perm[i] = int(j.Becomes)
	}
	return perm
}

// LimbPermutation returns the limb relabeling as plain integers.
func (p *Pattern) LimbPermutation() []int {
	perm := make([]int, len(p.Repetition.LimbPermutation))
	for i, l := range p.Repetition.LimbPermutation {
		perm[i] = int(l)
	}
	return perm
}

// MaxDuration returns the longest throw duration, or 0 without throws.
func (p *Pattern) MaxDuration() int {
	m := 0
	for _, t := range p.Throws {
		m = max(m, t.Duration)
	}
	return m
}

// IsPass reports whether t lands on a different juggler than it left.
func (p *Pattern) IsPass(t Throw) bool {
	from, errFrom := p.JugglerOf(t.From)
	to, errTo := p.JugglerOf(t.To)
	return errFrom == nil && errTo == nil && from != to
}

// JugglerName returns the default label for juggler index i ("A", "B", ...).
func JugglerName(i int) string {
	return string(rune('A' + i))
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
