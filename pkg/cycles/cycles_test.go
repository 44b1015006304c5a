package cycles

import (
	"slices"
	"testing"

	"github.com/matzehuels/jifkit/pkg/jif"
)

func TestCompute(t *testing.T) {
	abc := []string{"A", "B", "C"}
	tests := []struct {
		name   string
		perm   []int
		labels []string
		want   []string
	}{
		{"rotation", []int{1, 2, 0}, abc, []string{"A", "B", "C", "A"}},
		{"reverse rotation", []int{2, 0, 1}, abc, []string{"A", "C", "B", "A"}},
		{"identity of one", []int{0}, []string{"A"}, []string{"A", "A"}},
		{"swap", []int{1, 0}, []string{"A", "B"}, []string{"A", "B", "A"}},
		{"fixed point", []int{0, 2, 1}, abc, nil},
		{"identity", []int{0, 1, 2}, abc, nil},
		{"two swaps", []int{1, 0, 3, 2}, []string{"0", "1", "2", "3"}, nil},
		{"empty", nil, nil, nil},
		{"out of range", []int{1, 5, 0}, abc, nil},
		{"missing labels", []int{1, 0}, []string{"A"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.perm, tt.labels)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Compute(%v) = %v, want %v", tt.perm, got, tt.want)
			}
		})
	}
}

func TestComputeTotality(t *testing.T) {
	// Non-nil exactly for single full cycles; then n+1 labels, closed.
	perms := [][]int{
		{1, 2, 3, 0}, {3, 0, 1, 2}, {1, 0, 3, 2}, {0, 1, 2, 3}, {2, 3, 1, 0}, {3, 2, 1, 0},
	}
	labels := []string{"a", "b", "c", "d"}
	for _, perm := range perms {
		got := Compute(perm, labels)
		single := cycleLength(perm) == len(perm)
		if (got != nil) != single {
			t.Errorf("Compute(%v) = %v, single cycle = %v", perm, got, single)
			continue
		}
		if got != nil && (len(got) != len(perm)+1 || got[0] != got[len(got)-1]) {
			t.Errorf("Compute(%v) = %v, want closed cycle of length %d", perm, got, len(perm)+1)
		}
	}
}

func cycleLength(perm []int) int {
	n, cur := 0, 0
	for {
		n++
		cur = perm[cur]
		if cur == 0 {
			return n
		}
	}
}

func TestJugglerAndLimb(t *testing.T) {
	p := jif.Resolve(jif.PartialPattern{
		Jugglers: []jif.PartialJuggler{
			{Becomes: jif.Ptr(jif.JugglerID(1))},
			{Becomes: jif.Ptr(jif.JugglerID(0))},
		},
		Throws: []jif.PartialThrow{
			{Duration: jif.Ptr(10)}, {Duration: jif.Ptr(6)}, {Duration: jif.Ptr(6)},
			{Duration: jif.Ptr(6)}, {Duration: jif.Ptr(7)},
		},
	})

	if got := Juggler(p); !slices.Equal(got, []string{"A", "B", "A"}) {
		t.Errorf("Juggler() = %v, want [A B A]", got)
	}
	// Limb permutation [3 0 1 2]: 0 → 3 → 2 → 1 → 0.
	if got := Limb(p); !slices.Equal(got, []string{"0", "3", "2", "1", "0"}) {
		t.Errorf("Limb() = %v, want [0 3 2 1 0]", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format([]string{"A", "M", "C", "B", "A"}); got != "A → M → C → B → A" {
		t.Errorf("Format() = %q", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
