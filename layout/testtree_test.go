package layout

// fakeNode and fakeTree are a minimal, in-package Tree implementation used
// only by this package's own tests, so the flexbox engine can be exercised
// without pulling in a real node store.
type fakeNode struct {
	style    Style
	children []NodeID
	measurer Measurer
	layout   Layout
	cache    Cache
}

type fakeTree struct {
	nodes []fakeNode
}

// add appends a node and returns its id. Children must already exist.
func (t *fakeTree) add(style Style, children ...NodeID) NodeID {
	t.nodes = append(t.nodes, fakeNode{style: style, children: children})
	return NodeID(len(t.nodes) - 1)
}

func (t *fakeTree) addMeasured(style Style, m Measurer) NodeID {
	t.nodes = append(t.nodes, fakeNode{style: style, measurer: m})
	return NodeID(len(t.nodes) - 1)
}

func (t *fakeTree) ChildCount(node NodeID) int { return len(t.nodes[node].children) }
func (t *fakeTree) Child(node NodeID, i int) NodeID { return t.nodes[node].children[i] }
func (t *fakeTree) Style(node NodeID) Style { return t.nodes[node].style }
func (t *fakeTree) LayoutMut(node NodeID) *Layout { return &t.nodes[node].layout }
func (t *fakeTree) CacheMut(node NodeID) *Cache { return &t.nodes[node].cache }
func (t *fakeTree) Measure(node NodeID) (Measurer, bool) {
	n := t.nodes[node]
	return n.measurer, n.measurer != nil
}

var _ Tree = (*fakeTree)(nil)

// fixedStyle returns a Row-flex style with the given border-box width and
// height fixed, everything else defaulted.
func fixedStyle(width, height float64) Style {
	s := DefaultStyle()
	s.Size = Size[Value]{Width: Points(width), Height: Points(height)}
	return s
}
