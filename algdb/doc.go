// Package algdb maps blindfolded operations to the physical turns that
// perform them.
//
// A table is a YAML (or JSON, which yaml.v3 also reads) document:
//
//	corners:
//	  "swap:RDF": "[R U' R', D]"
//	  "twist:LUB": "..."
//	edges:
//	  "swap:UR": "..."
//	  "flip:DB": "..."
//	parity: "..."
//
// Keys are blind op keys (op.Key()). Values use package notation; every
// entry is expanded and checked against the cube move table when the
// table is loaded, so a loaded DB never holds an unparsable entry.
//
// Entries may only use the 18 face turns U R F D L B, each plain or
// with "2", "'" or "2'". Slice moves (M E S), wide turns (r, Rw) and
// rotations (x y z) are rejected with cube.ErrUnknownMove, so sheets
// written with them must be rewritten in face turns first.
//
// Translate walks a sequence, looks every op up by its piece kind and key
// and returns the concatenated, simplified turns.
//
// Errors:
//
//   - ErrEmptyTable   the document has no corner or edge entries.
//   - ErrTooLarge     the document exceeds MaxTableSize.
//   - ErrUnknownKey   an op has no table entry.
//   - wrapped notation / cube errors for bad entries.
package algdb
