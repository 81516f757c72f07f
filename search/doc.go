// Package search enumerates the bounded-distance neighbourhood of an
// operation sequence: every ModifiedSequence that differs from the base in
// exactly k steps, each paired with the state it reaches from an initial
// state.
//
// What:
//
//   - Distance1 / Distance2: eager enumeration at distance 1 and 2.
//   - Distance:   the same for any k (k steps changed at once).
//   - Enumerate:  lazy iter.Seq form of the same enumeration.
//   - Explore:    distances 1..MaxDistance with optional parallel workers
//     (golang.org/x/sync/errgroup) and cancellation.
//   - Count:      closed-form size of the distance-k neighbourhood.
//
// Order:
//
//	Step tuples i1 < i2 < ... < ik in lexicographic order; within a tuple,
//	the alternatives of i1 vary slowest. Parallel exploration returns the
//	same order as the sequential one.
//
// Counts:
//
//	With a_s = |alternatives(base[s])|, the distance-k neighbourhood has
//	e_k(a_0, ..., a_{n-1}) members (the k-th elementary symmetric sum). For a
//	corner sequence with s swaps and t twists: d1 = 23s + 15t,
//	d2 = C(s,2)*23*23 + s*t*23*15 + C(t,2)*15*15.
//
// Nothing is filtered: unsolved or nonsensical final states are recorded
// like any other.
//
// Errors:
//
//   - ErrBadDistance  Distance called with k < 1.
//   - context errors  from Explore when its context is cancelled.
package search
