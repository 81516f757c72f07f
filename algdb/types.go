package algdb

import "errors"

// MaxTableSize bounds the bytes read from a table document.
const MaxTableSize = 1 << 20

var (
	// ErrEmptyTable indicates a table without entries.
	ErrEmptyTable = errors.New("algdb: empty table")

	// ErrTooLarge indicates a document above MaxTableSize.
	ErrTooLarge = errors.New("algdb: table too large")

	// ErrUnknownKey indicates an op missing from the table.
	ErrUnknownKey = errors.New("algdb: unknown key")
)

// File is the on-disk shape of a table.
type File struct {
	Corners map[string]string `yaml:"corners"`
	Edges   map[string]string `yaml:"edges"`
	Parity  string            `yaml:"parity,omitempty"`
}
