// Package blindcube models a 3x3x3 cube as piece permutations and
// orientations, computes the fixed-buffer blindfolded solution for any
// state, and explains wrong final states by the one or two operations a
// solver most likely got wrong.
//
// 🚀 What is inside?
//
//	• State & moves: composition law, face-turn tables, move parsing
//	• Inspection: cycle decomposition through the UFR / UF buffers
//	• Operations: swaps, twists, flips and their alternatives
//	• Neighbourhood search: every 1- and 2-step substitution, in order
//	• Detection: hashed index from reached state to substitutions
//	• Notation & tables: commutator shorthand, sticker-keyed algorithms
//
// Subpackages:
//
//	cube/      — State, Move, composition, parsing, hashing
//	blind/     — operations, sequences, inspection, modified sequences, Solve
//	search/    — distance-1 / distance-2 neighbourhoods, lazy and parallel
//	detect/    — wrong-operation detector (corners, edges, mixed)
//	notation/  — [A, B] / [A: B] / [A/ B] expansion, inversion, simplification
//	algdb/     — YAML / JSON algorithm tables, op → turn translation
//	metrics/   — Prometheus observer for detectors
//	cmd/blindcube — CLI: solve, detect, translate, expand
//
// Quick example:
//
//	s, _ := cube.Scramble("R U R' U'")
//	d := detect.NewCorner(s)
//	for _, ms := range d.Detect(observed) {
//		fmt.Println(ms) // substituted steps are marked *like(this)*
//	}
package blindcube
