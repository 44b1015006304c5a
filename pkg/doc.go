// Package pkg provides the core libraries for jifkit juggling pattern analysis.
//
// # Overview
//
// Jifkit reads passing patterns written in prechac or siteswap notation,
// models them in the juggling interchange format (JIF), inserts manipulators,
// and derives the orbits that objects travel and the cycles that jugglers
// and limbs follow over repetitions.
//
// # Architecture
//
// The typical data flow through jifkit:
//
//	prechac / siteswap / JIF JSON
//	         ↓
//	    [notation] package (parse into a partial pattern)
//	         ↓
//	    [jif] package (resolve defaults, permutation, throw tables)
//	         ↓
//	    [manip] package (insert manipulators)
//	         ↓
//	    [orbits] and [cycles] packages (analysis)
//	         ↓
//	    text, JSON, DOT or SVG output
//
// [pipeline] runs these stages with caching and observability hooks and is
// shared by the CLI and the HTTP API.
//
// # Quick Start
//
//	partial, _ := notation.ParsePrechacText("3B 3 3\n3A 3 3")
//	p := jif.Resolve(partial)
//
//	lines, _ := notation.ParseManipulators([]string{"- - - sa - i1b"})
//	p, _ = manip.AddAll(p, lines)
//
//	list, _ := orbits.Compute(p)
//	fmt.Println(orbits.Objects(list, p.Period()), cycles.Format(cycles.Juggler(p)))
//
// # Main Packages
//
// [jif] - The pattern model: jugglers, limbs, throws and the repetition
// that maps limbs onto limbs after one period. Partial patterns carry
// optional fields; [jif.Resolve] fills in defaults.
//
// [notation] - Parsers for prechac, siteswap and manipulator lines, and the
// formatting helpers for throw labels.
//
// [manip] - The manipulator engine that turns intercepts and substitutes
// into rewritten throws and an extra juggler.
//
// [orbits] - Orbit discovery and Graphviz rendering of the throw graph.
//
// [cycles] - Juggler and limb cycles of the repetition permutation.
//
// [preset] - The built-in catalog of named patterns.
//
// [io] - JIF JSON import and export.
//
// ## Infrastructure
//
// [cache] - Memory, file and null caches with content-addressed keys.
//
// [observability] - Hooks for warnings, trace events, pipeline stages,
// cache operations and HTTP requests.
//
// [errors] - Coded errors and input validation.
//
// [jif]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/jif
// [jif.Resolve]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/jif#Resolve
// [notation]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/notation
// [manip]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/manip
// [orbits]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/orbits
// [cycles]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/cycles
// [preset]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/preset
// [io]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/jifkit/pkg/errors
package pkg
