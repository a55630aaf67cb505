// Package codec centralizes row and value encoding for collaborators that
// persist tables by iterating them.
//
// The core defines no on-disk format of its own; a persistence collaborator
// picks a codec, iterates GetRow/RowCount (positional tables) or the live
// row ids (identity tables), and owns the resulting schema. Codec selection
// is a compatibility boundary: bytes written by one codec may not decode
// with another.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when callers do not choose one.
var Default Codec = JSON{}

// ByName returns a built-in codec by its stable name, for self-describing
// formats that record the codec name in a header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
