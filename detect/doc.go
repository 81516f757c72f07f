// Package detect explains a wrong final state: given the state a user
// started from and the state they actually reached, it lists every 1- or
// 2-operation substitution of the correct blindfolded sequence that
// reproduces the wrong state.
//
// What:
//
//   - A Detector is built once: run inspection on the initial state, build
//     the distance-1 and distance-2 neighbourhoods of the resulting sequence
//     with package search, index them by state hash.
//   - Detect(observed) returns every indexed ModifiedSequence whose recorded
//     state equals observed (full value equality), in index order.
//   - Zero matches is a normal "no match" answer, not an error. Several
//     matches are an ambiguous but legitimate answer and are all returned.
//
// Constructors:
//
//   - NewCorner: corner sequence from blind.InspectCorners.
//   - NewEdge:   edge sequence from blind.InspectEdges (WithSwapInspection
//     switches on the UF/UR relabel).
//   - NewMixed:  corners then edges in one sequence.
//   - New:       any sequence kind with a caller-supplied Inspector.
//
// A built Detector is read-only and safe for concurrent Detect calls.
//
// Complexity:
//
//	Construction is O(R * n) for R = |neighbourhood| results of an n-step
//	sequence; Detect is O(1) expected plus O(matches).
package detect
