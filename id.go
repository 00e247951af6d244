package rmdoc

import (
	"github.com/google/uuid"
)

// ID identifies a document, collection or page in a notebook store.
type ID struct {
	uuid.UUID
}

// ParseID parses the string representation of an ID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, err
	}
	return ID{u}, nil
}

// IsZero tells if this is the zero value.
func (i ID) IsZero() bool {
	return i.UUID == uuid.Nil
}
