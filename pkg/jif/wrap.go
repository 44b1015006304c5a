package jif

// WrapLimb translates (time, limb) into the period window [0, period).
// Each period crossed forward applies the limb permutation; each period
// crossed backward applies its inverse. A non-positive period returns the
// input unchanged, and a limb the permutation does not cover keeps its
// index.
func WrapLimb(time int, limb LimbID, rep Repetition) (int, LimbID) {
	period := rep.Period
	if period <= 0 {
		return time, limb
	}
	perm := rep.LimbPermutation
	for time >= period {
		time -= period
		if limb >= 0 && int(limb) < len(perm) {
			limb = perm[limb]
		}
	}
	for time < 0 {
		time += period
		for i, l := range perm {
			if l == limb {
				limb = LimbID(i)
				break
			}
		}
	}
	return time, limb
}

// WrapJuggler translates (time, juggler) into the period window [0, period)
// following the becomes relabeling, with the same rules as [WrapLimb].
func WrapJuggler(time int, j JugglerID, period int, jugglers []Juggler) (int, JugglerID) {
	if period <= 0 {
		return time, j
	}
	for time >= period {
		time -= period
		if j >= 0 && int(j) < len(jugglers) {
			j = jugglers[j].Becomes
		}
	}
	for time < 0 {
		time += period
		for i, other := range jugglers {
			if other.Becomes == j {
				j = JugglerID(i)
				break
			}
		}
	}
	return time, j
}

// WrapLimb wraps (time, limb) using the pattern's repetition.
func (p *Pattern) WrapLimb(time int, limb LimbID) (int, LimbID) {
	return WrapLimb(time, limb, p.Repetition)
}

// WrapJuggler wraps (time, juggler) using the pattern's relabeling.
func (p *Pattern) WrapJuggler(time int, j JugglerID) (int, JugglerID) {
	return WrapJuggler(time, j, p.Repetition.Period, p.Jugglers)
}
