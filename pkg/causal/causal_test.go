package causal

import (
	"slices"
	"testing"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/notation"
)

func prechac(t *testing.T, text string) *jif.Pattern {
	t.Helper()
	partial, err := notation.ParsePrechacText(text)
	if err != nil {
		t.Fatalf("ParsePrechacText(%q): %v", text, err)
	}
	return jif.Resolve(partial)
}

func siteswap(t *testing.T, s string, jugglers int) *jif.Pattern {
	t.Helper()
	partial, err := notation.ParseSiteswap(s, jugglers)
	if err != nil {
		t.Fatalf("ParseSiteswap(%q): %v", s, err)
	}
	return jif.Resolve(partial)
}

func TestOffset(t *testing.T) {
	if got := Offset(prechac(t, "3B 3 3\n3A 3 3")); got != 2 {
		t.Errorf("Offset(3-count) = %d, want 2", got)
	}
	if got := Offset(siteswap(t, "975", 2)); got != 4 {
		t.Errorf("Offset(975) = %d, want 4", got)
	}
}

func TestInterface(t *testing.T) {
	tests := []struct {
		name string
		p    *jif.Pattern
		j    jif.JugglerID
		want []Shape
	}{
		{"3-count A", prechac(t, "3B 3 3\n3A 3 3"), 0, []Shape{Outwards, Outwards, Straight}},
		{"3-count B", prechac(t, "3B 3 3\n3A 3 3"), 1, []Shape{Outwards, Outwards, Straight}},
		{"solo cascade", prechac(t, "3"), 0, []Shape{Straight}},
		{"975 A", siteswap(t, "975", 2), 0, []Shape{Straight, Straight, Straight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interface(tt.p, tt.j)
			if err != nil {
				t.Fatalf("Interface: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Interface() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterfaceUnknownJuggler(t *testing.T) {
	if _, err := Interface(prechac(t, "3"), 1); !jiferr.Is(err, jiferr.ErrCodeLookup) {
		t.Errorf("Interface(unknown) error = %v, want %s", err, jiferr.ErrCodeLookup)
	}
}

func TestInterfaces(t *testing.T) {
	p := prechac(t, "3B 3 3\n3A 3 3")
	all := Interfaces(p)
	if len(all) != 2 {
		t.Fatalf("Interfaces() = %v, want 2 jugglers", all)
	}
	for j, shapes := range all {
		want, _ := Interface(p, jif.JugglerID(j))
		if !slices.Equal(shapes, want) {
			t.Errorf("Interfaces()[%d] = %v, want %v", j, shapes, want)
		}
	}
}

func TestGlyph(t *testing.T) {
	for shape, want := range map[Shape]string{Straight: "-", Outwards: "v", Inwards: "^"} {
		if got := shape.Glyph(); got != want {
			t.Errorf("%s.Glyph() = %q, want %q", shape, got, want)
		}
	}
}
