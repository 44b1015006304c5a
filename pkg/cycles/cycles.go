// Package cycles computes the display cycle of a relabeling permutation.
//
// After one period every juggler takes over another juggler's role (and
// every limb another limb's schedule). When that permutation is a single
// cycle through all indices, it is shown as the sequence of labels visited
// starting from index 0, with the first label repeated to close the loop:
//
//	A → M → C → B → A
//
// Permutations that split into several disjoint cycles have no single
// display cycle and yield nil.
package cycles

import (
	"strconv"
	"strings"

	"github.com/matzehuels/jifkit/pkg/jif"
)

// Compute follows perm from index 0 until an index repeats. If every index
// was visited it returns the visited labels followed by labels[0];
// otherwise it returns nil. It also returns nil for an empty permutation,
// a permutation with an out-of-range entry, or too few labels.
func Compute(perm []int, labels []string) []string {
	n := len(perm)
	if n == 0 || len(labels) < n {
		return nil
	}
	visited := make([]bool, n)
	cycle := make([]string, 0, n+1)
	for cur := 0; !visited[cur]; cur = perm[cur] {
		visited[cur] = true
		cycle = append(cycle, labels[cur])
		if perm[cur] < 0 || perm[cur] >= n {
			return nil
		}
	}
	if len(cycle) != n {
		return nil
	}
	return append(cycle, labels[0])
}

// Juggler returns the display cycle of the juggler relabeling.
func Juggler(p *jif.Pattern) []string {
	return Compute(p.JugglerPermutation(), p.JugglerLabels())
}

// Limb returns the display cycle of the limb permutation, labeled by limb
// index.
func Limb(p *jif.Pattern) []string {
	perm := p.LimbPermutation()
	labels := make([]string, len(perm))
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return Compute(perm, labels)
}

// Format joins a cycle with arrows, or returns "" for a nil cycle.
func Format(cycle []string) string {
	return strings.Join(cycle, " → ")
}
