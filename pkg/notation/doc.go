// Package notation parses the textual pattern notations into sparse
// [jif.PartialPattern] input and manipulator instruction lines into
// [manip.Instruction] lists.
//
// Three surface syntaxes are supported:
//
//   - Prechac: one line of whitespace-separated throws per juggler, such as
//     "3B 3 3". A throw is a base-36 duration optionally followed by the
//     letter of the juggler it is passed to. A line may start with a
//     "label:" prefix and end with "-> label" (or "=> label") to set the
//     end-of-period relabeling explicitly.
//   - Siteswap: a flat string of base-36 durations such as "975", shared
//     round-robin between a given number of jugglers.
//   - Manipulator lines: one token per beat, "-" for beats without an
//     instruction and "sA", "iA", "i1A" or "i2A" otherwise.
//
// Every parse error carries the PARSE_ERROR code and names the offending
// token or line. Nothing is partially applied.
//
// The package also renders the short throw labels shown in throw tables
// and formats instruction lists back into manipulator lines.
package notation
