// Package notation expands the bracket shorthand used in blindfolded
// algorithm sheets into plain face turns.
//
// Grammar (whitespace separates turns; brackets may touch turns):
//
//	seq     := item*
//	item    := turn | "(" seq ")" suffix | "[" body "]"
//	body    := seq | seq op body            (operators are right-assoc)
//	op      := "," | ":" | "/"
//	suffix  := [digits] ["'"]               (must touch the ")"; count <= MaxRepeat)
//
// Semantics:
//
//	[A, B]  commutator  A B A' B'
//	[A: B]  conjugate   A B A'
//	[A/ B]  slash       A B A A B' A
//	(A)3    repeat      A A A
//	(A)'    inverse     A'
//
// [A: B, C] therefore reads as [A: [B, C]].
//
// Turns are opaque words: a letter run with an optional count and prime
// ("R", "Rw2", "U'", "M2'"). Expand does not validate them against a
// move table; callers parse the result with cube.ParseAlgorithm.
//
// Errors:
//
//   - ErrUnbalanced       a bracket or parenthesis is not closed or closes
//     the wrong opener.
//   - ErrEmptyOperand     an operator has an empty side.
//   - ErrUnexpectedToken  an operator outside brackets, a stray closer, or a
//     repeat count that is not a decimal in [0, MaxRepeat].
//   - ErrTooLong          a group or operator would expand past MaxTurns.
package notation
