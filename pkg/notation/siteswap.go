package notation

import (
	"strconv"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
)

// ParseSiteswap converts a flat siteswap shared by the given number of
// jugglers into sparse pattern input. Characters other than ASCII letters
// and digits are ignored; each remaining character is one base-36 throw.
//
// Only durations and relabeling are produced. Juggler j becomes
// (j + period) mod jugglers, and limbs, hands and labels are left to
// [jif.Resolve].
func ParseSiteswap(s string, jugglers int) (jif.PartialPattern, error) {
	if jugglers < 1 {
		return jif.PartialPattern{}, jiferr.New(jiferr.ErrCodeParse, "siteswap needs at least one juggler, got %d", jugglers)
	}

	var throws []jif.PartialThrow
	for _, r := range s {
		if !isAlnum(r) {
			continue
		}
		d, err := strconv.ParseInt(string(r), 36, 0)
		if err != nil {
			return jif.PartialPattern{}, jiferr.Wrap(jiferr.ErrCodeParse, err, "invalid siteswap throw %q", r)
		}
		throws = append(throws, jif.PartialThrow{Duration: jif.Ptr(int(d))})
	}
	if len(throws) == 0 {
		return jif.PartialPattern{}, jiferr.New(jiferr.ErrCodeParse, "siteswap %q has no throws", s)
	}

	period := len(throws)
	js := make([]jif.PartialJuggler, jugglers)
	for j := range js {
		js[j] = jif.PartialJuggler{Becomes: jif.Ptr(jif.JugglerID((j + period) % jugglers))}
	}
	return jif.PartialPattern{Jugglers: js, Throws: throws}, nil
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
