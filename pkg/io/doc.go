// Package io provides JSON import and export of juggling patterns.
//
// # JSON Format
//
// Patterns use the JIF layout. Every field is optional on input; missing
// fields are filled by [jif.Resolve]:
//
//	{
//	  "jugglers": [{"label": "A", "becomes": 1}, {"label": "B", "becomes": 0}],
//	  "limbs": [
//	    {"juggler": 0, "kind": "right_hand"},
//	    {"juggler": 0, "kind": "left_hand"}
//	  ],
//	  "throws": [{"time": 0, "duration": 3, "from": 0, "to": 3}],
//	  "repetition": {"period": 3}
//	}
//
// A "limbPermutation" inside "repetition" is accepted but ignored; it is
// always derived from the jugglers' "becomes" fields.
//
// # Import
//
// Use [ImportJSON] to read a pattern from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	pp, err := io.ImportJSON("pattern.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := jif.Resolve(pp)
//
// Both validate that every index refers to an existing juggler or limb and
// that limb kinds are known. Failures carry the INVALID_FORMAT code.
//
// # Export
//
// Use [ExportJSON] to write a resolved pattern to a file, or [WriteJSON] to
// write to any io.Writer. Exported patterns are fully specified, including
// the derived limb permutation, and import back to the same pattern.
package io
