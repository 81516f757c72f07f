// Package blind implements the fixed-buffer blindfolded method on top of
// cube.State: the abstract corrective operations (Swap, Twist, Flip), the
// cycle-decomposition inspection that produces them, alternative
// generation, and the modified-sequence overlay used by the diagnostic
// search.
//
// What:
//
//   - CornerOp / EdgeOp: closed tagged variants. A corner op is a Swap
//     (buffer, target, orientation 0..2) or a Twist (target, orientation 1..2);
//     an edge op is a Swap (buffer, target, orientation 0..1) or a Flip.
//     MixedOp is a tagged union of the two so corner and edge steps can live
//     in one sequence.
//   - InspectCorners / InspectEdges: trace every permutation cycle through
//     the buffer (UFR for corners, UF for edges), one buffer swap per step,
//     then resolve leftover orientation one piece at a time.
//   - Alternatives: every other syntactically legal op of the same kind,
//     never the op itself (corner Swap 23, Twist 15; edge Swap 23, Flip 11).
//   - ModifiedSequence: an immutable base sequence plus a sparse list of
//     (index, replacement) modifiers, materialised by a linear merge.
//   - Solve: corners, then edges with the UF/UR swap-inspection relabel when
//     the corner swap count is odd.
//
// Why:
//
//	Blind solving only acts relative to one memorised buffer slot, so every
//	transposition emitted involves the buffer. The same representation lets
//	the search and detect packages ask "what if step k had been different".
//
// Complexity:
//
//   - Inspect*:     O(N) ops emitted, O(N) per op (N = 8 or 12 pieces).
//   - Alternatives: O(1) (at most 24 candidates).
//   - Sequence():   O(n + m) for n steps and m modifiers.
//
// Inspection, application and alternative generation never fail; they are
// total functions over well-formed states (see cube package preconditions).
package blind
