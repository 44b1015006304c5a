package jif

import (
	"fmt"

	"github.com/matzehuels/jifkit/pkg/observability"
)

// Table is a lookup of throws indexed by [row][beat], where a row is a limb
// or a juggler depending on how it was built. Cells without a throw are nil.
// Pointers refer into the pattern's Throws slice.
type Table [][]*Throw

// At returns the throw at (row, beat), or nil if the cell is empty or out
// of range.
func (t Table) At(row, beat int) *Throw {
	if row < 0 || row >= len(t) || beat < 0 || beat >= len(t[row]) {
		return nil
	}
	return t[row][beat]
}

// ThrowsByLimb builds a table indexed by [limb][beat]. A second throw in
// the same cell replaces the first and emits a duplicate_throw warning.
// Throws outside the period or from unknown limbs are skipped with a
// throw_out_of_range warning.
func ThrowsByLimb(p *Pattern) Table {
	return buildTable(p, len(p.Limbs), "limb", func(t *Throw) (int, string, bool) {
		l, err := p.Limb(t.From)
		if err != nil {
			return 0, "", false
		}
		return int(t.From), l.Label, true
	})
}

// ThrowsByJuggler builds a table indexed by [juggler][beat] with the same
// warning rules as [ThrowsByLimb].
func ThrowsByJuggler(p *Pattern) Table {
	return buildTable(p, len(p.Jugglers), "juggler", func(t *Throw) (int, string, bool) {
		j, err := p.JugglerOf(t.From)
		if err != nil || int(j) >= len(p.Jugglers) || j < 0 {
			return 0, "", false
		}
		return int(j), p.Jugglers[j].Label, true
	})
}

func buildTable(p *Pattern, rows int, rowKind string, rowOf func(*Throw) (int, string, bool)) Table {
	period := max(p.Repetition.Period, 0)
	table := make(Table, rows)
	for i := range table {
		table[i] = make([]*Throw, period)
	}
	for i := range p.Throws {
		t := &p.Throws[i]
		row, label, ok := rowOf(t)
		if !ok || t.Time < 0 || t.Time >= period {
			observability.Trace().OnWarning(observability.Warning{
				Kind:    WarnThrowOutOfRange,
				Message: fmt.Sprintf("throw %d at beat %d from limb %d is outside the pattern", i, t.Time, t.From),
				Fields:  []any{"throw", i, "time", t.Time, "from", t.From},
			})
			continue
		}
		if table[row][t.Time] != nil {
			observability.Trace().OnWarning(observability.Warning{
				Kind:    WarnDuplicateThrow,
				Message: fmt.Sprintf("more than 1 throw detected by %s %s at time %d", rowKind, label, t.Time),
				Fields:  []any{rowKind, label, "time", t.Time},
			})
		}
		table[row][t.Time] = t
	}
	return table
}
