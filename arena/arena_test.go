package arena

import (
	"errors"
	"testing"

	"github.com/flexcore/flexcore/layout"
)

func TestNewLeaf(t *testing.T) {
	a := New()
	style := layout.DefaultStyle()
	style.Size.Width = layout.Points(100)

	id := a.NewLeaf(style)

	if got := a.Style(id); got.Size.Width != layout.Points(100) {
		t.Errorf("Style(id).Size.Width = %+v, want Points(100)", got.Size.Width)
	}
	if a.ChildCount(id) != 0 {
		t.Errorf("ChildCount = %d, want 0", a.ChildCount(id))
	}
}

func TestNewWithChildren(t *testing.T) {
	a := New()
	child1 := a.NewLeaf(layout.DefaultStyle())
	child2 := a.NewLeaf(layout.DefaultStyle())
	parent := a.NewWithChildren(layout.DefaultStyle(), []layout.NodeID{child1, child2})

	if a.ChildCount(parent) != 2 {
		t.Fatalf("ChildCount = %d, want 2", a.ChildCount(parent))
	}
	if a.Child(parent, 0) != child1 || a.Child(parent, 1) != child2 {
		t.Error("children not preserved in order")
	}
}

func TestAddChild(t *testing.T) {
	a := New()
	parent := a.NewLeaf(layout.DefaultStyle())
	child := a.NewLeaf(layout.DefaultStyle())

	if err := a.AddChild(parent, child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if a.ChildCount(parent) != 1 || a.Child(parent, 0) != child {
		t.Error("AddChild did not attach child")
	}
}

func TestSetStyleClearsCache(t *testing.T) {
	a := New()
	id := a.NewLeaf(layout.DefaultStyle())
	a.CacheMut(id).Store(layout.Size[*float64]{}, layout.Size[layout.AvailableSpace]{}, layout.PerformLayout, layout.Size[float64]{Width: 5, Height: 5})

	if _, ok := a.CacheMut(id).Get(layout.Size[*float64]{}, layout.Size[layout.AvailableSpace]{}, layout.PerformLayout, layout.InherentSize); !ok {
		t.Fatal("expected cache hit before SetStyle")
	}

	if err := a.SetStyle(id, layout.DefaultStyle()); err != nil {
		t.Fatalf("SetStyle: %v", err)
	}
	if _, ok := a.CacheMut(id).Get(layout.Size[*float64]{}, layout.Size[layout.AvailableSpace]{}, layout.PerformLayout, layout.InherentSize); ok {
		t.Error("SetStyle should clear the node's cache")
	}
}

func TestRemoveThenReuseGeneration(t *testing.T) {
	a := New()
	id := a.NewLeaf(layout.DefaultStyle())

	if err := a.Remove(id); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if err := a.SetStyle(id, layout.DefaultStyle()); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("SetStyle on removed id: err = %v, want ErrInvalidNode", err)
	}

	next := a.NewLeaf(layout.DefaultStyle())
	if next == id {
		t.Error("reused slot should carry a new generation, so the handle must differ")
	}
}

func TestMustGetPanicsOnInvalidID(t *testing.T) {
	a := New()
	defer func() {
		if recover() == nil {
			t.Error("expected ChildCount on an invalid id to panic")
		}
	}()
	a.ChildCount(layout.NodeID(9999))
}
