package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
)

// ReadJSON decodes a JSON pattern from r into sparse input.
//
// ReadJSON returns an INVALID_FORMAT error if:
//   - The JSON is malformed
//   - A juggler's becomes or a limb's juggler names no juggler
//   - A limb kind is not right_hand, left_hand or other
//   - A throw's from or to names no limb
//   - A throw has a negative time or duration
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (jif.PartialPattern, error) {
	var pp jif.PartialPattern
	if err := json.NewDecoder(r).Decode(&pp); err != nil {
		return jif.PartialPattern{}, jiferr.Wrap(jiferr.ErrCodeInvalidFormat, err, "decode pattern")
	}
	if err := validate(pp); err != nil {
		return jif.PartialPattern{}, err
	}
	return pp, nil
}

// ImportJSON reads a JSON pattern file at path.
func ImportJSON(path string) (jif.PartialPattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return jif.PartialPattern{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func validate(pp jif.PartialPattern) error {
	jugglers := len(pp.Jugglers)
	if pp.Jugglers == nil {
		jugglers = 1
	}
	limbs := len(pp.Limbs)
	if pp.Limbs == nil {
		limbs = 2 * jugglers
	}

	invalid := func(format string, args ...any) error {
		return jiferr.New(jiferr.ErrCodeInvalidFormat, format, args...)
	}
	for i, j := range pp.Jugglers {
		if j.Becomes != nil && (*j.Becomes < 0 || int(*j.Becomes) >= jugglers) {
			return invalid("juggler %d: becomes %d names no juggler", i, *j.Becomes)
		}
	}
	for i, l := range pp.Limbs {
		if l.Juggler != nil && (*l.Juggler < 0 || int(*l.Juggler) >= jugglers) {
			return invalid("limb %d: juggler %d does not exist", i, *l.Juggler)
		}
		if l.Kind != nil && !l.Kind.Valid() {
			return invalid("limb %d: unknown kind %q", i, *l.Kind)
		}
	}
	for i, t := range pp.Throws {
		if t.From != nil && (*t.From < 0 || int(*t.From) >= limbs) {
			return invalid("throw %d: from limb %d does not exist", i, *t.From)
		}
		if t.To != nil && (*t.To < 0 || int(*t.To) >= limbs) {
			return invalid("throw %d: to limb %d does not exist", i, *t.To)
		}
		if t.Time != nil && *t.Time < 0 {
			return invalid("throw %d: negative time %d", i, *t.Time)
		}
		if t.Duration != nil && *t.Duration < 0 {
			return invalid("throw %d: negative duration %d", i, *t.Duration)
		}
	}
	if pp.Repetition != nil && pp.Repetition.Period != nil && *pp.Repetition.Period < 0 {
		return invalid("negative period %d", *pp.Repetition.Period)
	}
	return nil
}
