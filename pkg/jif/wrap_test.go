package jif

import (
	"slices"
	"testing"

	"github.com/matzehuels/jifkit/pkg/observability"
)

func TestWrapLimb(t *testing.T) {
	tests := []struct {
		name     string
		time     int
		limb     LimbID
		rep      Repetition
		wantTime int
		wantLimb LimbID
	}{
		{"inside period", 1, 2, Repetition{Period: 3, LimbPermutation: []LimbID{1, 2, 0}}, 1, 2},
		{"one period forward", 4, 0, Repetition{Period: 3, LimbPermutation: []LimbID{1, 2, 0}}, 1, 1},
		{"two periods forward", 7, 0, Repetition{Period: 3, LimbPermutation: []LimbID{1, 2, 0}}, 1, 2},
		{"one period back", -1, 2, Repetition{Period: 3, LimbPermutation: []LimbID{2, 0, 1}}, 2, 0},
		{"exact boundary", 3, 0, Repetition{Period: 3, LimbPermutation: []LimbID{1, 2, 0}}, 0, 1},
		{"zero period", 5, 1, Repetition{Period: 0, LimbPermutation: []LimbID{1, 0}}, 5, 1},
		{"unknown limb", 4, 9, Repetition{Period: 3, LimbPermutation: []LimbID{1, 0}}, 1, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTime, gotLimb := WrapLimb(tt.time, tt.limb, tt.rep)
			if gotTime != tt.wantTime || gotLimb != tt.wantLimb {
				t.Errorf("WrapLimb(%d, %d) = (%d, %d), want (%d, %d)",
					tt.time, tt.limb, gotTime, gotLimb, tt.wantTime, tt.wantLimb)
			}
		})
	}
}

func TestWrapJuggler(t *testing.T) {
	swap := []Juggler{{Becomes: 1}, {Becomes: 0}}
	rotate := []Juggler{{Becomes: 1}, {Becomes: 2}, {Becomes: 0}}

	tests := []struct {
		name        string
		time        int
		juggler     JugglerID
		period      int
		jugglers    []Juggler
		wantTime    int
		wantJuggler JugglerID
	}{
		{"swap forward", 5, 0, 4, swap, 1, 1},
		{"rotate twice", 7, 0, 3, rotate, 1, 2},
		{"rotate back", -1, 0, 3, rotate, 2, 2},
		{"rotate back twice", -4, 0, 3, rotate, 2, 1},
		{"no wrap", 2, 1, 3, rotate, 2, 1},
		{"zero period", 2, 1, 0, rotate, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTime, gotJuggler := WrapJuggler(tt.time, tt.juggler, tt.period, tt.jugglers)
			if gotTime != tt.wantTime || gotJuggler != tt.wantJuggler {
				t.Errorf("WrapJuggler(%d, %d) = (%d, %d), want (%d, %d)",
					tt.time, tt.juggler, gotTime, gotJuggler, tt.wantTime, tt.wantJuggler)
			}
		})
	}
}

func TestWrapRoundTrip(t *testing.T) {
	p := Resolve(PartialPattern{
		Jugglers: becomes(1, 0),
		Throws:   durations(10, 6, 6, 6, 7),
	})
	period := p.Period()
	for l := range p.Limbs {
		for beat := 0; beat < period; beat++ {
			for k := 1; k <= 4; k++ {
				t1, l1 := p.WrapLimb(beat+k*period, LimbID(l))
				t2, l2 := p.WrapLimb(t1-k*period, l1)
				if t2 != beat || l2 != LimbID(l) {
					t.Errorf("limb %d beat %d k=%d: round trip = (%d, %d)", l, beat, k, t2, l2)
				}
			}
		}
	}
	for j := range p.Jugglers {
		for k := 1; k <= 3; k++ {
			t1, j1 := p.WrapJuggler(k*period, JugglerID(j))
			t2, j2 := p.WrapJuggler(t1-k*period, j1)
			if t2 != 0 || j2 != JugglerID(j) {
				t.Errorf("juggler %d k=%d: round trip = (%d, %d)", j, k, t2, j2)
			}
		}
	}
}

func TestIsSynchronous(t *testing.T) {
	tests := []struct {
		name     string
		jugglers int
		throws   []Throw
		want     bool
	}{
		{"single juggler", 1, []Throw{{Time: 0}, {Time: 1}}, true},
		{"no jugglers", 0, nil, true},
		{"simultaneous throws", 2, []Throw{{Time: 0}, {Time: 0}}, true},
		{"one throw per beat", 2, []Throw{{Time: 0}, {Time: 1}, {Time: 2}}, false},
		{"no throws", 2, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSynchronous(tt.jugglers, tt.throws); got != tt.want {
				t.Errorf("IsSynchronous() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThrowsByLimb(t *testing.T) {
	p := Resolve(threeCount())
	table := ThrowsByLimb(p)

	if len(table) != 4 {
		t.Fatalf("len(table) = %d, want 4", len(table))
	}
	// Limb 0 (A's right hand) throws at beats 0 and 2.
	if th := table.At(0, 0); th == nil || th.To != 3 {
		t.Errorf("At(0, 0) = %+v, want throw to limb 3", th)
	}
	if th := table.At(0, 1); th != nil {
		t.Errorf("At(0, 1) = %+v, want nil", th)
	}
	if th := table.At(0, 2); th == nil || th.To != 1 {
		t.Errorf("At(0, 2) = %+v, want throw to limb 1", th)
	}
	if th := table.At(9, 0); th != nil {
		t.Errorf("At(9, 0) = %+v, want nil", th)
	}
}

func TestThrowsByJuggler(t *testing.T) {
	p := Resolve(threeCount())
	table := ThrowsByJuggler(p)

	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}
	for j := range table {
		for beat := range table[j] {
			if table[j][beat] == nil {
				t.Errorf("juggler %d beat %d has no throw", j, beat)
			}
		}
	}
}

func TestThrowsTableWarnings(t *testing.T) {
	rec := observability.NewRecorder()
	observability.SetTraceHooks(rec)
	defer observability.Reset()

	p := Resolve(PartialPattern{
		Throws: []PartialThrow{
			{Time: Ptr(0), From: Ptr(LimbID(0))},
			{Time: Ptr(0), From: Ptr(LimbID(0)), Duration: Ptr(5)},
			{Time: Ptr(1), From: Ptr(LimbID(7))},
		},
	})
	table := ThrowsByLimb(p)

	if th := table.At(0, 0); th == nil || th.Duration != 5 {
		t.Errorf("At(0, 0) = %+v, want the later throw", th)
	}
	want := []string{WarnDuplicateThrow, WarnThrowOutOfRange}
	if kinds := rec.WarningKinds(); !slices.Equal(kinds, want) {
		t.Errorf("warnings = %v, want %v", kinds, want)
	}
}
