package notation

import (
	"regexp"
	"strings"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/manip"
)

var (
	placeholder      = regexp.MustCompile(`^-+$`)
	manipInstruction = regexp.MustCompile(`^(s|i|i1|i2)([a-z])$`)
)

// ParseManipulator parses one manipulator line. Token position is the beat;
// "-" (any number of dashes) leaves a beat without an instruction. "i" is
// shorthand for "i2".
func ParseManipulator(line string) ([]manip.Instruction, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, jiferr.New(jiferr.ErrCodeParse, "manipulator line is empty")
	}

	var instrs []manip.Instruction
	for beat, part := range parts {
		if placeholder.MatchString(part) {
			continue
		}
		m := manipInstruction.FindStringSubmatch(strings.ToLower(part))
		if m == nil {
			return nil, jiferr.New(jiferr.ErrCodeParse,
				"invalid manipulator instruction: %s. Expected something like \"sA\", \"iA\", \"i1A\" or \"i2A\", with - as placeholder", part)
		}
		typ := manip.Intercept2b
		switch m[1] {
		case "s":
			typ = manip.Substitute
		case "i1":
			typ = manip.Intercept1b
		}
		instrs = append(instrs, manip.Instruction{
			Type: typ,
			Beat: beat,
			From: jif.JugglerID(jugglerIndex(m[2])),
		})
	}
	return instrs, nil
}

// ParseManipulators parses one manipulator per line. Blank lines are
// rejected so that line numbers in errors match the input.
func ParseManipulators(lines []string) ([][]manip.Instruction, error) {
	out := make([][]manip.Instruction, 0, len(lines))
	for i, line := range lines {
		instrs, err := ParseManipulator(line)
		if err != nil {
			return nil, jiferr.Wrap(jiferr.ErrCodeParse, err, "manipulator %d", i+1)
		}
		out = append(out, instrs)
	}
	return out, nil
}
