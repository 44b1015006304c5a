package notation

import (
	"strconv"
	"strings"
	"unicode"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/manip"
)

// Format names an input notation.
type Format string

const (
	FormatAuto     Format = "auto"
	FormatPrechac  Format = "prechac"
	FormatSiteswap Format = "siteswap"
	FormatJSON     Format = "json"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatAuto, FormatPrechac, FormatSiteswap, FormatJSON}

// ParseFormat validates a format name. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatAuto, nil
	}
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", jiferr.New(jiferr.ErrCodeInvalidFormat, "unknown notation format %q (want auto, prechac, siteswap or json)", s)
}

// Detect guesses the notation of text: JSON if it starts with "{",
// siteswap if it contains no whitespace, prechac otherwise.
func Detect(text string) Format {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "{"):
		return FormatJSON
	case strings.IndexFunc(text, unicode.IsSpace) < 0:
		return FormatSiteswap
	default:
		return FormatPrechac
	}
}

// UseLetters reports whether throw labels should use the P/S letters: the
// pattern is synchronous and nothing is thrown higher than a 3.
func UseLetters(p *jif.Pattern) bool {
	return p.IsSynchronous() && p.MaxDuration() == 3
}

// ThrowLabel renders the short label of a throw as shown in throw tables.
//
//   - with letters, a 3 is "P" for a pass and "S" for a self
//   - otherwise the base-36 duration, with a "p" suffix for passes in
//     synchronous patterns
//   - passes append "_" and the receiving juggler's label, e.g. "P_B"
func ThrowLabel(p *jif.Pattern, t jif.Throw, useLetters bool) string {
	pass := p.IsPass(t)
	var label string
	if useLetters && t.Duration == 3 {
		label = "S"
		if pass {
			label = "P"
		}
	} else {
		label = strconv.FormatInt(int64(t.Duration), 36)
		if pass && p.IsSynchronous() {
			label += "p"
		}
	}
	if pass {
		to, _ := p.JugglerOf(t.To)
		label += "_" + p.JugglerLabel(to)
	}
	return label
}

// FormatManipulator renders instructions as a manipulator line with at least
// beats tokens, using "-" for beats without an instruction. The result
// parses back with [ParseManipulator].
func FormatManipulator(instrs []manip.Instruction, beats int) string {
	for _, in := range instrs {
		beats = max(beats, in.Beat+1)
	}
	tokens := make([]string, beats)
	for i := range tokens {
		tokens[i] = "-"
	}
	for _, in := range instrs {
		if in.Beat < 0 {
			continue
		}
		tokens[in.Beat] = instructionToken(in)
	}
	return strings.Join(tokens, " ")
}

func instructionToken(in manip.Instruction) string {
	prefix := "s"
	switch in.Type {
	case manip.Intercept1b:
		prefix = "i1"
	case manip.Intercept2b:
		prefix = "i2"
	}
	return prefix + jif.JugglerName(int(in.From))
}
