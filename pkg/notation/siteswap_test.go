package notation

import (
	"slices"
	"testing"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
)

func TestParseSiteswap(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		jugglers      int
		wantDurations []int
		wantBecomes   []jif.JugglerID
	}{
		{"5-count popcorn", "a6786", 2, []int{10, 6, 7, 8, 6}, []jif.JugglerID{1, 0}},
		{"why not", "77862", 2, []int{7, 7, 8, 6, 2}, []jif.JugglerID{1, 0}},
		{"holy grail", "975", 2, []int{9, 7, 5}, []jif.JugglerID{1, 0}},
		{"cascade", "3", 1, []int{3}, []jif.JugglerID{0}},
		{"separators", "7 7 8 6 2", 2, []int{7, 7, 8, 6, 2}, []jif.JugglerID{1, 0}},
		{"three jugglers", "966", 3, []int{9, 6, 6}, []jif.JugglerID{0, 1, 2}},
		{"uppercase", "A6786", 2, []int{10, 6, 7, 8, 6}, []jif.JugglerID{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp, err := ParseSiteswap(tt.input, tt.jugglers)
			if err != nil {
				t.Fatalf("ParseSiteswap(%q, %d): %v", tt.input, tt.jugglers, err)
			}
			var durations []int
			for _, th := range pp.Throws {
				if th.Time != nil || th.From != nil || th.To != nil {
					t.Errorf("throw %+v carries more than a duration", th)
				}
				durations = append(durations, *th.Duration)
			}
			if !slices.Equal(durations, tt.wantDurations) {
				t.Errorf("durations = %v, want %v", durations, tt.wantDurations)
			}
			var becomes []jif.JugglerID
			for _, j := range pp.Jugglers {
				if j.Label != nil {
					t.Errorf("juggler has label %q, want none", *j.Label)
				}
				becomes = append(becomes, *j.Becomes)
			}
			if !slices.Equal(becomes, tt.wantBecomes) {
				t.Errorf("becomes = %v, want %v", becomes, tt.wantBecomes)
			}
			if pp.Limbs != nil {
				t.Errorf("Limbs = %v, want nil", pp.Limbs)
			}
		})
	}
}

func TestParseSiteswapErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		jugglers int
	}{
		{"empty", "", 2},
		{"only separators", "- -", 2},
		{"no jugglers", "975", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSiteswap(tt.input, tt.jugglers)
			if !jiferr.Is(err, jiferr.ErrCodeParse) {
				t.Errorf("ParseSiteswap(%q, %d) error = %v, want %s", tt.input, tt.jugglers, err, jiferr.ErrCodeParse)
			}
		})
	}
}

func TestSiteswapResolvesConsistently(t *testing.T) {
	// Every landing must hit a limb that throws at that beat.
	for _, ss := range []string{"7a666", "975", "777786", "786"} {
		pp, err := ParseSiteswap(ss, 2)
		if err != nil {
			t.Fatalf("ParseSiteswap(%q): %v", ss, err)
		}
		p := jif.Resolve(pp)
		table := jif.ThrowsByLimb(p)
		for _, th := range p.Throws {
			beat, limb := p.WrapLimb(th.Time+th.Duration, th.To)
			if table.At(int(limb), beat) == nil {
				t.Errorf("%s: throw %+v lands on limb %d beat %d with no throw", ss, th, limb, beat)
			}
		}
	}
}
