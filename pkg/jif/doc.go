// Package jif provides the pattern model for juggling passing patterns.
//
// # Overview
//
// A pattern is a discrete, periodic throw graph. It is made of jugglers
// (roles), limbs (throwing and catching points owned by a juggler), throws
// (scheduled events from one limb at one beat, landing on another limb
// some beats later) and a repetition block describing how roles and limbs
// are relabeled at the end of each period.
//
// # Two Stages
//
// Input arrives as a [PartialPattern] where every field is optional. A
// single total function, [Resolve], fills every missing field and returns a
// fully specified [Pattern]:
//
//	p := jif.Resolve(jif.PartialPattern{
//	    Throws: []jif.PartialThrow{{Duration: jif.Ptr(3)}},
//	})
//	fmt.Println(p.Repetition.Period) // 1
//
// Default policy lives only in [Resolve]. Read sites never apply defaults.
//
// # Repetition
//
// The limb permutation is always derived, never taken from input. For
// synchronous patterns each limb continues as the same-handed limb (even
// period) or opposite-handed limb (odd period) of the juggler its owner
// becomes. Patterns inferred to be asynchronous (several jugglers, never
// two throws on one beat) use a pure index shift instead. See
// [IsSynchronous].
//
// # Wrapping
//
// [WrapLimb] and [WrapJuggler] translate a (time, index) pair across period
// boundaries by repeatedly applying the forward or inverse permutation.
// They loop rather than take a modulo because permutation composition does
// not commute with modular arithmetic.
//
// # Typed Indices
//
// Jugglers and limbs are referenced by [JugglerID] and [LimbID]. The two are
// distinct types so a juggler index cannot be passed where a limb index is
// expected. Accessors such as [Pattern.Limb] bounds-check and return a
// LOOKUP_ERROR for unknown indices.
//
// # Concurrency
//
// A resolved [Pattern] is never mutated by this module. Concurrent reads are
// safe. Use [Pattern.Clone] before editing one by hand.
package jif
