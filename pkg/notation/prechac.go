package notation

import (
	"regexp"
	"strconv"
	"strings"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
)

// prechacThrow matches a single prechac throw such as "3" or "4B".
var prechacThrow = regexp.MustCompile(`(?i)^([0-9a-z])([a-z])?$`)

var arrows = []string{"->", "=>"}

type prechacLine struct {
	label  string
	target string // explicit relabeling target, empty if none
	arrow  bool
	tokens []string
}

// ParsePrechac converts prechac notation, one line per juggler, into sparse
// pattern input.
//
// Juggler j gets limbs 2j (right hand) and 2j+1 (left hand). Even beats
// throw from the right hand and odd beats from the left; the destination
// hand follows the parity of time+duration. Without explicit arrows, every
// juggler becomes the next one. If any line carries an arrow, every
// juggler's becomes is taken from its arrow and lines without one keep
// their own role.
func ParsePrechac(lines []string) (jif.PartialPattern, error) {
	if len(lines) == 0 {
		return jif.PartialPattern{}, jiferr.New(jiferr.ErrCodeParse, "prechac notation needs at least one line")
	}

	parsed := make([]prechacLine, len(lines))
	period := -1
	anyArrow := false
	for j, raw := range lines {
		pl, err := splitPrechacLine(raw, j)
		if err != nil {
			return jif.PartialPattern{}, err
		}
		if period >= 0 && len(pl.tokens) != period {
			return jif.PartialPattern{}, jiferr.New(jiferr.ErrCodeParse,
				"instructions must be the same length: line %d has %d beats, line 1 has %d", j+1, len(pl.tokens), period)
		}
		period = len(pl.tokens)
		anyArrow = anyArrow || pl.arrow
		parsed[j] = pl
	}

	n := len(lines)
	jugglers := make([]jif.PartialJuggler, n)
	for j, pl := range parsed {
		label := pl.label
		if label == "" {
			label = jif.JugglerName(j)
		}
		jugglers[j] = jif.PartialJuggler{
			Label:   jif.Ptr(label),
			Becomes: jif.Ptr(jif.JugglerID((j + 1) % n)),
		}
	}
	if anyArrow {
		for j, pl := range parsed {
			target := jif.JugglerID(j)
			if pl.arrow {
				var ok bool
				if target, ok = resolveTarget(pl.target, jugglers); !ok {
					return jif.PartialPattern{}, jiferr.New(jiferr.ErrCodeParse,
						"relabeling target %q on line %d names no juggler", pl.target, j+1)
				}
			}
			jugglers[j].Becomes = jif.Ptr(target)
		}
	}

	limbs := make([]jif.PartialLimb, 2*n)
	for l := range limbs {
		kind := jif.RightHand
		if l%2 == 1 {
			kind = jif.LeftHand
		}
		limbs[l] = jif.PartialLimb{Juggler: jif.Ptr(jif.JugglerID(l / 2)), Kind: jif.Ptr(kind)}
	}

	throws := make([]jif.PartialThrow, 0, n*period)
	for j, pl := range parsed {
		for time, tok := range pl.tokens {
			duration, target, err := parsePrechacThrow(tok, j)
			if err != nil {
				return jif.PartialPattern{}, err
			}
			if target >= n {
				return jif.PartialPattern{}, jiferr.New(jiferr.ErrCodeParse,
					"pass target in %q on line %d names no juggler (pattern has %d)", tok, j+1, n)
			}
			if target < 0 {
				target = j
			}
			throws = append(throws, jif.PartialThrow{
				Time:     jif.Ptr(time),
				Duration: jif.Ptr(duration),
				From:     jif.Ptr(jif.LimbID(2*j + time%2)),
				To:       jif.Ptr(jif.LimbID(2*target + (time+duration)%2)),
			})
		}
	}

	return jif.PartialPattern{Jugglers: jugglers, Limbs: limbs, Throws: throws}, nil
}

// ParsePrechacText splits text into lines, drops blank ones and parses the
// rest with [ParsePrechac].
func ParsePrechacText(text string) (jif.PartialPattern, error) {
	return ParsePrechac(Lines(text))
}

// Lines splits text into trimmed, non-blank lines.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitPrechacLine(raw string, j int) (prechacLine, error) {
	var pl prechacLine
	rest := raw
	if i := strings.Index(rest, ":"); i >= 0 {
		pl.label = strings.TrimSpace(rest[:i])
		rest = rest[i+1:]
	}
	for _, arrow := range arrows {
		if i := strings.Index(rest, arrow); i >= 0 {
			pl.arrow = true
			pl.target = strings.TrimSpace(rest[i+len(arrow):])
			rest = rest[:i]
			break
		}
	}
	if pl.arrow && pl.target == "" {
		return pl, jiferr.New(jiferr.ErrCodeParse, "line %d has an arrow without a relabeling target", j+1)
	}
	pl.tokens = strings.Fields(rest)
	if len(pl.tokens) == 0 {
		return pl, jiferr.New(jiferr.ErrCodeParse, "line %d has no throws", j+1)
	}
	return pl, nil
}

// parsePrechacThrow returns the duration and pass target of a throw token.
// The target is -1 for self throws.
func parsePrechacThrow(tok string, j int) (int, int, error) {
	m := prechacThrow.FindStringSubmatch(tok)
	if m == nil {
		return 0, 0, jiferr.New(jiferr.ErrCodeParse,
			"invalid throw %q on line %d: throw must match (single-character duration)(pass target)?, e.g. \"3\" or \"4B\"", tok, j+1)
	}
	duration, err := strconv.ParseInt(m[1], 36, 0)
	if err != nil {
		return 0, 0, jiferr.Wrap(jiferr.ErrCodeParse, err, "invalid duration in throw %q on line %d", tok, j+1)
	}
	target := -1
	if m[2] != "" {
		target = jugglerIndex(m[2])
	}
	return int(duration), target, nil
}

// resolveTarget finds an arrow target by label first, then by juggler
// letter.
func resolveTarget(target string, jugglers []jif.PartialJuggler) (jif.JugglerID, bool) {
	for i, j := range jugglers {
		if j.Label != nil && *j.Label == target {
			return jif.JugglerID(i), true
		}
	}
	if len(target) == 1 {
		if i := jugglerIndex(target); i >= 0 && i < len(jugglers) {
			return jif.JugglerID(i), true
		}
	}
	return 0, false
}

// jugglerIndex returns the 0-based index for a juggler letter (a/A is 0).
// It returns -1 for anything that is not a single ASCII letter.
func jugglerIndex(letter string) int {
	if len(letter) != 1 {
		return -1
	}
	c := letter[0]
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	}
	return -1
}
