package algdb

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
	"github.com/katalvlaran/blindcube/notation"
)

// DB is a loaded, validated table. It is read-only after construction.
type DB struct {
	corners map[string][]string
	edges   map[string][]string
	parity  []string
}

// Parse decodes and validates a table document.
func Parse(data []byte) (*DB, error) {
	if len(data) > MaxTableSize {
		return nil, fmt.Errorf("algdb: Parse: %d bytes: %w", len(data), ErrTooLarge)
	}
	var f File
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("algdb: Parse: %w", err)
	}

	return New(f)
}

// Load reads a table document from r.
func Load(r io.Reader) (*DB, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxTableSize+1))
	if err != nil {
		return nil, fmt.Errorf("algdb: Load: %w", err)
	}

	return Parse(data)
}

// LoadFile reads a table document from path.
func LoadFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("algdb: LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// New validates f: every entry must expand and parse as cube moves.
func New(f File) (*DB, error) {
	if len(f.Corners) == 0 && len(f.Edges) == 0 {
		return nil, ErrEmptyTable
	}
	db := &DB{}
	var err error
	if db.corners, err = compile("corners", f.Corners); err != nil {
		return nil, err
	}
	if db.edges, err = compile("edges", f.Edges); err != nil {
		return nil, err
	}
	if f.Parity != "" {
		if db.parity, err = turns(f.Parity); err != nil {
			return nil, fmt.Errorf("algdb: parity: %w", err)
		}
	}

	return db, nil
}

func compile(section string, entries map[string]string) (map[string][]string, error) {
	out := make(map[string][]string, len(entries))
	for k, v := range entries {
		t, err := turns(v)
		if err != nil {
			return nil, fmt.Errorf("algdb: %s[%q]: %w", section, k, err)
		}
		out[k] = t
	}

	return out, nil
}

// turns expands an entry and checks every turn against the move table.
func turns(alg string) ([]string, error) {
	t, err := notation.Parse(alg)
	if err != nil {
		return nil, err
	}
	if _, err = cube.ParseAlgorithm(strings.Join(t, " ")); err != nil {
		return nil, err
	}

	return t, nil
}

func (db *DB) section(kind blind.PieceKind) map[string][]string {
	if kind == blind.Edges {
		return db.edges
	}

	return db.corners
}

// Lookup returns the expanded turns stored for key.
func (db *DB) Lookup(kind blind.PieceKind, key string) ([]string, bool) {
	t, ok := db.section(kind)[key]

	return slices.Clone(t), ok
}

// Keys lists the keys of one section in sorted order.
func (db *DB) Keys(kind blind.PieceKind) []string {
	m := db.section(kind)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Len is the number of corner plus edge entries.
func (db *DB) Len() int { return len(db.corners) + len(db.edges) }

// Parity returns the parity algorithm, if the table has one.
func (db *DB) Parity() ([]string, bool) {
	return slices.Clone(db.parity), db.parity != nil
}

// Translate returns the turns performing seq, simplified across step
// boundaries. Every missing key is reported, joined into one error.
func Translate[T blind.Operation[T]](db *DB, seq blind.Sequence[T]) ([]string, error) {
	var (
		out  []string
		errs []error
	)
	for i, op := range seq {
		t, ok := db.section(op.Piece())[op.Key()]
		if !ok {
			errs = append(errs, fmt.Errorf("step %d %s %q: %w", i, op.Piece(), op.Key(), ErrUnknownKey))
			continue
		}
		out = append(out, t...)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("algdb: Translate: %w", errors.Join(errs...))
	}

	return notation.Simplify(out), nil
}

// TranslateSolution translates the corner sequence, the edge sequence and,
// when sol.Parity is set, the parity algorithm, in the order
// blind.Solution.Apply performs them.
func TranslateSolution(db *DB, sol blind.Solution) ([]string, error) {
	c, err := Translate(db, sol.Corners)
	if err != nil {
		return nil, err
	}
	e, err := Translate(db, sol.Edges)
	if err != nil {
		return nil, err
	}
	out := append(c, e...)
	if sol.Parity {
		if db.parity == nil {
			return nil, fmt.Errorf("algdb: TranslateSolution: parity: %w", ErrUnknownKey)
		}
		out = append(out, db.parity...)
	}

	return notation.Simplify(out), nil
}
