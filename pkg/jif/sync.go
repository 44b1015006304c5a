package jif

// IsSynchronous reports whether a pattern should be treated as
// (semi-)synchronous: it has fewer than two jugglers, or two or more throws
// share a beat. Flat siteswaps passed between several jugglers throw once
// per beat and are therefore asynchronous.
//
// This is a heuristic. It drives both the limb permutation rule in
// [Resolve] and the throw labels shown to users.
func IsSynchronous(jugglerCount int, throws []Throw) bool {
	if jugglerCount < 2 {
		return true
	}
	seen := make(map[int]bool, len(throws))
	for _, t := range throws {
		if seen[t.Time] {
			return true
		}
		seen[t.Time] = true
	}
	return false
}

// IsSynchronous applies [IsSynchronous] to the pattern.
func (p *Pattern) IsSynchronous() bool {
	return IsSynchronous(len(p.Jugglers), p.Throws)
}
