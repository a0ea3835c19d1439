package graph

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// CellRef identifies one cell. Identity is the ID alone; Name is cosmetic
// and only shows up in debug output.
type CellRef struct {
	ID   uint64
	Name string
}

func NamedRef(id uint64, name string) CellRef {
	return CellRef{ID: id, Name: name}
}

// RefForName derives a stable ref from a debug name. Two calls with the
// same name always produce the same ID, so it can be used as a symbol.
func RefForName(name string) CellRef {
	return CellRef{ID: xxhash.Sum64String(name), Name: name}
}

func (r CellRef) Equal(other CellRef) bool {
	return r.ID == other.ID
}

func (r CellRef) String() string {
	if r.Name != "" {
		return fmt.Sprintf("%s#%d", r.Name, r.ID)
	}
	return fmt.Sprintf("#%d", r.ID)
}
