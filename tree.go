package rmdoc

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/akeil/rmdoc/internal/logging"
)

const trashID = "trash"

// Node is the representation for an entry in the content tree.
// A node can either be a document or a collection (which has child nodes).
type Node struct {
	ID       string
	Parent   *Node
	Children []*Node
	entry    Entry
	path     string
}

// Root tells if this is the (virtual) root node of a tree.
func (n *Node) Root() bool {
	return n.ID == ""
}

// Leaf tells if this node is a document.
func (n *Node) Leaf() bool {
	return n.entry.Type() == DocumentEntry
}

// Entry returns the resolved document or collection.
func (n *Node) Entry() Entry {
	return n.entry
}

// Document returns the document for leaf nodes and nil otherwise.
func (n *Node) Document() *Document {
	return n.entry.Document()
}

// StorePath is the path of this item in the notebook store ("<store>/<id>").
func (n *Node) StorePath() string {
	return n.path
}

// Name is the display name of this node.
func (n *Node) Name() string {
	if n.ID == trashID {
		return "Trash"
	}
	return n.entry.Name()
}

// Pinned tells if this item is bookmarked.
func (n *Node) Pinned() bool {
	m := n.entry.Metadata()
	return m != nil && m.Pinned()
}

// LastModified is the time of the last change, zero for virtual nodes.
func (n *Node) LastModified() time.Time {
	m := n.entry.Metadata()
	if m == nil {
		return time.Time{}
	}
	return m.LastModified()
}

// Path returns the display names from the top level down to this node.
func (n *Node) Path() []string {
	if n.Root() {
		return []string{}
	}
	p := n.Parent.Path()
	return append(p, n.Name())
}

// Walk calls f for this node and all nodes below it, depth first.
// Walking stops at the first error.
func (n *Node) Walk(f func(*Node) error) error {
	err := f(n)
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		err = c.Walk(f)
		if err != nil {
			return err
		}
	}
	return nil
}

// NodeFilter selects nodes in a tree.
type NodeFilter func(*Node) bool

// IsDocument selects documents.
func IsDocument(n *Node) bool {
	return n.Leaf()
}

// IsPinned selects bookmarked items.
func IsPinned(n *Node) bool {
	return n.Pinned()
}

// MatchName selects nodes whose display name contains s (case-insensitive).
func MatchName(s string) NodeFilter {
	s = strings.ToLower(s)
	return func(n *Node) bool {
		return strings.Contains(strings.ToLower(n.Name()), s)
	}
}

// MatchPath selects nodes whose path of display names, joined with "/",
// matches the given glob pattern, e.g. "Work/**" or "**/Meeting*".
// An invalid pattern matches nothing.
func MatchPath(pattern string) NodeFilter {
	return func(n *Node) bool {
		ok, err := doublestar.Match(pattern, strings.Join(n.Path(), "/"))
		return err == nil && ok
	}
}

// Filtered returns a copy of the tree which contains only the nodes that
// match all filters, along with the collections leading to them.
func (n *Node) Filtered(filters ...NodeFilter) *Node {
	c := &Node{
		ID:       n.ID,
		Children: make([]*Node, 0),
		entry:    n.entry,
		path:     n.path,
	}
	for _, child := range n.Children {
		fc := child.Filtered(filters...)
		if len(fc.Children) > 0 || matchAll(child, filters) {
			c.addChild(fc)
		}
	}
	return c
}

func matchAll(n *Node, filters []NodeFilter) bool {
	for _, f := range filters {
		if !f(n) {
			return false
		}
	}
	return true
}

// Sort sorts the subtree starting at this node by the given sort rule.
// Sorting is in-place.
func (n *Node) Sort(compare func(*Node, *Node) bool) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		return compare(n.Children[i], n.Children[j])
	})

	for _, c := range n.Children {
		c.Sort(compare)
	}
}

// addChild adds a child node to this node and sets the Parent field
// of the child.
func (n *Node) addChild(child *Node) {
	n.Children = append(n.Children, child)
	child.Parent = n
}

// BuildTree resolves all items in the notebook store at dir and arranges
// them in a tree. Returns the root node.
//
// Deleted items are skipped, trashed items are placed in a "Trash"
// collection. Items with unreadable metadata are skipped with a warning.
func BuildTree(dir string) (*Node, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	root := &Node{Children: make([]*Node, 0)}
	trash := &Node{ID: trashID, Children: make([]*Node, 0)}

	byID := make(map[string]*Node)
	nodes := make([]*Node, 0)
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != extMetadata {
			continue
		}
		id := strings.TrimSuffix(f.Name(), extMetadata)
		p := filepath.Join(dir, id)
		e, err := Resolve(p)
		if err != nil {
			logging.Warning("Skip %q: %v", id, err)
			continue
		}
		if e.Metadata().Deleted() {
			continue
		}

		n := &Node{ID: id, Children: make([]*Node, 0), entry: e, path: p}
		byID[id] = n
		nodes = append(nodes, n)
	}

	for _, n := range nodes {
		m := n.entry.Metadata()
		if m.Trashed() {
			trash.addChild(n)
			continue
		}

		parentID, ok := m.Parent()
		if !ok {
			root.addChild(n)
			continue
		}
		parent := byID[parentID.String()]
		if parent == nil || parent.Leaf() {
			logging.Warning("Parent %v of %q not found, put it at the top level", parentID, n.Name())
			root.addChild(n)
			continue
		}
		parent.addChild(n)
	}

	if len(trash.Children) > 0 {
		root.addChild(trash)
	}

	return root, nil
}

// DefaultSort is the comparsion function to sort nodes in the content tree
// with folders before documents and by name (case-insensitive).
// Pinned notes come before unpinned ones within a folder.
// The "Trash" folder comes last.
func DefaultSort(one, other *Node) bool {
	// special case - Trash goes last
	if one.ID == trashID {
		return false
	} else if other.ID == trashID {
		return true
	}

	// collections before content
	if one.Leaf() && !other.Leaf() {
		return false
	} else if other.Leaf() && !one.Leaf() {
		return true
	}

	// pinned before unpinned
	if one.Pinned() && !other.Pinned() {
		return true
	} else if other.Pinned() && !one.Pinned() {
		return false
	}

	// special case, equal display names, fall back on ID
	if one.Name() == other.Name() {
		return one.ID < other.ID
	}

	// by name, case-insensitive
	return strings.ToLower(one.Name()) < strings.ToLower(other.Name())
}
