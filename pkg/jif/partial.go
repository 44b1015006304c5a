package jif

// PartialJuggler is a [Juggler] whose fields may be absent.
type PartialJuggler struct {
	Label   *string    `json:"label,omitempty"`
	Becomes *JugglerID `json:"becomes,omitempty"`
}

// PartialLimb is a [Limb] whose fields may be absent.
type PartialLimb struct {
	Juggler *JugglerID `json:"juggler,omitempty"`
	Kind    *LimbKind  `json:"kind,omitempty"`
	Label   *string    `json:"label,omitempty"`
}

// PartialThrow is a [Throw] whose fields may be absent.
type PartialThrow struct {
	Time          *int    `json:"time,omitempty"`
	Duration      *int    `json:"duration,omitempty"`
	From          *LimbID `json:"from,omitempty"`
	To            *LimbID `json:"to,omitempty"`
	IsManipulated *bool   `json:"isManipulated,omitempty"`
}

// PartialRepetition is a [Repetition] whose fields may be absent.
// LimbPermutation is accepted for schema compatibility but always ignored.
type PartialRepetition struct {
	Period          *int     `json:"period,omitempty"`
	LimbPermutation []LimbID `json:"limbPermutation,omitempty"`
}

// PartialPattern is sparse pattern input. A nil slice means "absent" and is
// replaced by the default; an empty non-nil slice means "present but empty".
type PartialPattern struct {
	Jugglers   []PartialJuggler   `json:"jugglers,omitempty"`
	Limbs      []PartialLimb      `json:"limbs,omitempty"`
	Throws     []PartialThrow     `json:"throws,omitempty"`
	Repetition *PartialRepetition `json:"repetition,omitempty"`
}

// Ptr returns a pointer to v. It keeps partial literals short.
func Ptr[T any](v T) *T { return &v }

func valueOr[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// Partial converts a resolved pattern back into sparse input with every
// field set except the limb permutation, which [Resolve] recomputes.
func (p *Pattern) Partial() PartialPattern {
	out := PartialPattern{
		Jugglers:   make([]PartialJuggler, len(p.Jugglers)),
		Limbs:      make([]PartialLimb, len(p.Limbs)),
		Throws:     make([]PartialThrow, len(p.Throws)),
		Repetition: &PartialRepetition{Period: Ptr(p.Repetition.Period)},
	}
	for i, j := range p.Jugglers {
		out.Jugglers[i] = PartialJuggler{Label: Ptr(j.Label), Becomes: Ptr(j.Becomes)}
	}
	for i, l := range p.Limbs {
		out.Limbs[i] = PartialLimb{Juggler: Ptr(l.Juggler), Kind: Ptr(l.Kind), Label: Ptr(l.Label)}
	}
	for i, t := range p.Throws {
		out.Throws[i] = PartialThrow{
			Time:          Ptr(t.Time),
			Duration:      Ptr(t.Duration),
			From:          Ptr(t.From),
			To:            Ptr(t.To),
			IsManipulated: Ptr(t.IsManipulated),
		}
	}
	return out
}
