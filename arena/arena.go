// Package arena provides a concrete, stable-handle node store for the
// layout package's [layout.Tree] interface, in the spirit of taffy's
// TaffyTree: nodes live in a flat slice and are addressed by a generation-
// tagged id, so a freed slot can be reused without handing out a handle
// that silently aliases unrelated data.
package arena

import (
	"fmt"

	"github.com/flexcore/flexcore/layout"
)

// ErrInvalidNode is returned by the mutating Arena methods when called
// with a NodeID that does not (or no longer) refers to a live node. It
// wraps layout.ErrInvalidNodeID.
var ErrInvalidNode = fmt.Errorf("arena: %w", layout.ErrInvalidNodeID)

type nodeData struct {
	generation uint32
	alive      bool

	style    layout.Style
	children []layout.NodeID
	measurer layout.Measurer

	out   layout.Layout
	cache layout.Cache
}

// Arena is an append-only-by-default slot map of layout nodes. The zero
// value is ready to use.
type Arena struct {
	nodes []nodeData
	free  []uint32
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

func pack(index, generation uint32) layout.NodeID {
	return layout.NodeID(uint64(generation)<<32 | uint64(index))
}

func unpack(id layout.NodeID) (index, generation uint32) {
	return uint32(id), uint32(id >> 32)
}

func (a *Arena) get(id layout.NodeID) *nodeData {
	index, generation := unpack(id)
	if int(index) >= len(a.nodes) {
		return nil
	}
	n := &a.nodes[index]
	if !n.alive || n.generation != generation {
		return nil
	}
	return n
}

// NewLeaf creates a childless node with no measure function.
func (a *Arena) NewLeaf(style layout.Style) layout.NodeID {
	return a.insert(style, nil, nil)
}

// NewLeafWithMeasure creates a childless node sized by m (e.g. text).
func (a *Arena) NewLeafWithMeasure(style layout.Style, m layout.Measurer) layout.NodeID {
	return a.insert(style, nil, m)
}

// NewWithChildren creates a node with the given children, already in
// left-to-right order.
func (a *Arena) NewWithChildren(style layout.Style, children []layout.NodeID) layout.NodeID {
	return a.insert(style, append([]layout.NodeID(nil), children...), nil)
}

func (a *Arena) insert(style layout.Style, children []layout.NodeID, measurer layout.Measurer) layout.NodeID {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		node := &a.nodes[index]
		node.generation++
		node.alive = true
		node.style = style
		node.children = children
		node.measurer = measurer
		node.out = layout.Layout{}
		node.cache = layout.Cache{}
		return pack(index, node.generation)
	}

	index := uint32(len(a.nodes))
	a.nodes = append(a.nodes, nodeData{
		generation: 1,
		alive:      true,
		style:      style,
		children:   children,
		measurer:   measurer,
	})
	return pack(index, 1)
}

// Remove frees node's slot for reuse. It does not remove node from any
// parent's child list; callers should call SetChildren on the parent
// first, mirroring how a caller must detach a node before discarding it.
func (a *Arena) Remove(node layout.NodeID) error {
	n := a.get(node)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrInvalidNode, node)
	}
	index, _ := unpack(node)
	n.alive = false
	n.children = nil
	n.measurer = nil
	a.free = append(a.free, index)
	return nil
}

// SetStyle replaces node's style.
func (a *Arena) SetStyle(node layout.NodeID, style layout.Style) error {
	n := a.get(node)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrInvalidNode, node)
	}
	n.style = style
	n.cache.Clear()
	return nil
}

// SetChildren replaces node's child list wholesale.
func (a *Arena) SetChildren(node layout.NodeID, children []layout.NodeID) error {
	n := a.get(node)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrInvalidNode, node)
	}
	n.children = append([]layout.NodeID(nil), children...)
	n.cache.Clear()
	return nil
}

// AddChild appends a single child to node.
func (a *Arena) AddChild(node, child layout.NodeID) error {
	n := a.get(node)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrInvalidNode, node)
	}
	n.children = append(n.children, child)
	n.cache.Clear()
	return nil
}

// SetMeasure installs or clears (m == nil) node's measure function.
func (a *Arena) SetMeasure(node layout.NodeID, m layout.Measurer) error {
	n := a.get(node)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrInvalidNode, node)
	}
	n.measurer = m
	n.cache.Clear()
	return nil
}

// Layout returns the Layout last written by layout.ComputeLayout for node.
func (a *Arena) Layout(node layout.NodeID) (layout.Layout, error) {
	n := a.get(node)
	if n == nil {
		return layout.Layout{}, fmt.Errorf("%w: %d", ErrInvalidNode, node)
	}
	return n.out, nil
}

// The following methods implement layout.Tree. They panic on an invalid
// NodeID: the layout core's own contract is that it never manufactures
// node ids, so a mismatch here means the caller built the tree wrong, not
// a condition layout arithmetic can recover from.

func (a *Arena) ChildCount(node layout.NodeID) int {
	return len(a.mustGet(node).children)
}

func (a *Arena) Child(node layout.NodeID, i int) layout.NodeID {
	return a.mustGet(node).children[i]
}

func (a *Arena) Style(node layout.NodeID) layout.Style {
	return a.mustGet(node).style
}

func (a *Arena) LayoutMut(node layout.NodeID) *layout.Layout {
	return &a.mustGet(node).out
}

func (a *Arena) CacheMut(node layout.NodeID) *layout.Cache {
	return &a.mustGet(node).cache
}

func (a *Arena) Measure(node layout.NodeID) (layout.Measurer, bool) {
	n := a.mustGet(node)
	return n.measurer, n.measurer != nil
}

func (a *Arena) mustGet(node layout.NodeID) *nodeData {
	n := a.get(node)
	if n == nil {
		panic(fmt.Errorf("%w: %d", ErrInvalidNode, node))
	}
	return n
}

var _ layout.Tree = (*Arena)(nil)
