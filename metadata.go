package rmdoc

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/akeil/rmdoc/internal/logging"
)

// parentTrash is the parent value of items which were moved to the trash.
const parentTrash = "trash"

// Metadata holds the data from the `.metadata` file.
// It is present for documents and collections alike.
type Metadata struct {
	name     string
	parent   *ID
	trashed  bool
	pinned   bool
	deleted  bool
	modified time.Time
}

// metadataJSON is the on-disk layout of a `.metadata` file.
type metadataJSON struct {
	// VisibleName is the display name; it is the only required field.
	VisibleName *string `json:"visibleName"`
	// Parent is the ID of the parent folder.
	// It is empty if the item is located in the root folder.
	// It can also be set to the special value "trash" if the item is deleted.
	Parent       string     `json:"parent"`
	Pinned       bool       `json:"pinned"`
	Deleted      bool       `json:"deleted"`
	LastModified *Timestamp `json:"lastModified"`
}

// LoadMetadata reads the metadata file at the given path.
//
// Errors are always of KindStructural: an item without valid metadata is
// neither a document nor a collection.
func LoadMetadata(path string) (*Metadata, error) {
	m := &Metadata{}
	err := load(m, path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metadata) load(path string) error {
	logging.Debug("Read metadata from %q", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return newError(StageMetadata, KindStructural, path, err)
	}

	var raw metadataJSON
	err = json.Unmarshal(data, &raw)
	if err != nil {
		return newError(StageMetadata, KindStructural, path, err)
	}
	if raw.VisibleName == nil {
		return newError(StageMetadata, KindStructural, path, fmt.Errorf("missing field visibleName"))
	}

	m.name = *raw.VisibleName
	m.pinned = raw.Pinned
	m.deleted = raw.Deleted
	if raw.LastModified != nil {
		m.modified = raw.LastModified.Time
	}

	// parent is optional; anything that is not a valid ID means "top-level"
	switch raw.Parent {
	case "":
	case parentTrash:
		m.trashed = true
	default:
		id, err := ParseID(raw.Parent)
		if err != nil {
			logging.Debug("Ignore invalid parent %q in %q", raw.Parent, path)
		} else {
			m.parent = &id
		}
	}

	return nil
}

// Name is the display name.
func (m *Metadata) Name() string {
	return m.name
}

// Parent returns the ID of the parent collection.
// The boolean is false for items at the top level.
func (m *Metadata) Parent() (ID, bool) {
	if m.parent == nil {
		return ID{}, false
	}
	return *m.parent, true
}

// Trashed tells if the item was moved to the trash.
func (m *Metadata) Trashed() bool {
	return m.trashed
}

// Pinned tells if the item is bookmarked.
func (m *Metadata) Pinned() bool {
	return m.pinned
}

// Deleted tells if the item is marked for deletion by the tablet.
func (m *Metadata) Deleted() bool {
	return m.deleted
}

// LastModified is the time of the last change, zero if unknown.
func (m *Metadata) LastModified() time.Time {
	return m.modified
}

// Timestamp is a UNIX timestamp with millisecond precision in string format,
// e.g. "1607462787637".
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}

	secs := n / 1000
	nanos := (n - (secs * 1000)) * 1000000
	*t = Timestamp{time.Unix(secs, nanos).UTC()}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	millis := t.UnixNano() / 1000000
	return json.Marshal(strconv.FormatInt(millis, 10))
}
