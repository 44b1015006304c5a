package manip

import "github.com/matzehuels/jifkit/pkg/jif"

// Type is the kind of a manipulator instruction.
type Type string

const (
	// Substitute relays a single throw: the manipulator catches it and
	// throws it on to its original destination.
	Substitute Type = "substitute"
	// Intercept1b takes over a juggler's role and hands it back with a
	// 1-beat carry.
	Intercept1b Type = "intercept1b"
	// Intercept2b takes over a juggler's role and hands it back with a
	// 2-beat carry.
	Intercept2b Type = "intercept2b"
)

// IsIntercept reports whether t is one of the intercept kinds.
func (t Type) IsIntercept() bool {
	return t == Intercept1b || t == Intercept2b
}

// Instruction is one manipulator action on the throw made by From at Beat.
type Instruction struct {
	Type Type          `json:"type"`
	Beat int           `json:"beat"`
	From jif.JugglerID `json:"from"`
}
