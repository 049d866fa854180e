package zipper

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZipperReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	root := createTreeForTest()
	c, _ := New(tshape(), root).Down() // focus on 2
	c = c.Replace(lf(20))
	if c.Node().val != 20 {
		t.Errorf("expected focus to be on the replacement 20, is on %v", c.Node())
	}
	if got := c.Root().String(); got != "{1, [20, {3, [4, 5]}]}" {
		t.Errorf("expected rebuilt tree to hold 20, is %s", got)
	}
	if got := root.String(); got != "{1, [2, {3, [4, 5]}]}" {
		t.Errorf("expected the original tree to stay untouched, is %s", got)
	}
}

func TestZipperUpdate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	c, _ := New(tshape(), createTreeForTest()).Down()
	c, _ = c.Right() // focus on {3, [4, 5]}
	c = c.Update(func(n *tnode) *tnode {
		return &tnode{val: n.val * 10, kids: n.kids}
	})
	if got := c.Root().String(); got != "{1, [2, {30, [4, 5]}]}" {
		t.Errorf("expected branch value to be updated to 30, tree is %s", got)
	}
}

func TestZipperInsertLeftRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	c, _ := New(tshape(), createTreeForTest()).Down()
	c, _ = c.Right() // focus on {3, [4, 5]}
	c, err := c.InsertLeft(lf(9))
	if err != nil {
		t.Fatalf("expected insert-left of 9 to succeed, got %v", err)
	}
	c, err = c.InsertRight(lf(10))
	if err != nil {
		t.Fatalf("expected insert-right of 10 to succeed, got %v", err)
	}
	if c.Node().val != 3 {
		t.Errorf("expected focus to stay on {3}, is on %v", c.Node())
	}
	if got := c.Root().String(); got != "{1, [2, 9, {3, [4, 5]}, 10]}" {
		t.Errorf("expected siblings 9 and 10 around {3}, tree is %s", got)
	}
}

func TestZipperInsertAtRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	z := New(tshape(), createTreeForTest())
	w, err := z.InsertLeft(lf(0))
	if err != ErrInsertAtRoot {
		t.Errorf("expected insert-left at the root to fail with ErrInsertAtRoot, got %v", err)
	}
	if w.Node() != z.Node() {
		t.Error("expected failed insert to hand back the prior cursor, doesn't")
	}
	if _, err = z.InsertRight(lf(0)); err != ErrInsertAtRoot {
		t.Errorf("expected insert-right at the root to fail with ErrInsertAtRoot, got %v", err)
	}
}

// --- Remove ----------------------------------------------------------------

func TestZipperRemoveFirstChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	c, _ := New(tshape(), createTreeForTest()).Down() // focus on 2
	w, err := c.Remove()
	if err != nil {
		t.Fatalf("expected removal of 2 to succeed, got %v", err)
	}
	if w.Node().val != 1 {
		t.Errorf("expected focus to fall back to the parent {1}, is on %v", w.Node())
	}
	if got := w.Root().String(); got != "{1, [{3, [4, 5]}]}" {
		t.Errorf("expected tree without 2, is %s", got)
	}
}

func TestZipperRemoveWithLeftSibling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	c, _ := New(tshape(), createTreeForTest()).Down()
	c, _ = c.Right() // focus on {3, [4, 5]}
	w, err := c.Remove()
	if err != nil {
		t.Fatalf("expected removal of {3} to succeed, got %v", err)
	}
	if w.Node().val != 2 {
		t.Errorf("expected focus on the pre-order predecessor 2, is on %v", w.Node())
	}
	if got := w.Root().String(); got != "{1, [2]}" {
		t.Errorf("expected tree to shrink to {1, [2]}, is %s", got)
	}
}

func TestZipperRemoveDescendsLeftSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	root := br(0, br(1, lf(2), lf(3)), lf(4))
	c, _ := New(tshape(), root).Down()
	c, _ = c.Right() // focus on 4
	w, err := c.Remove()
	if err != nil {
		t.Fatalf("expected removal of 4 to succeed, got %v", err)
	}
	if w.Node().val != 3 {
		t.Errorf("expected focus on the deepest rightmost node 3, is on %v", w.Node())
	}
	if got := w.Root().String(); got != "{0, [{1, [2, 3]}]}" {
		t.Errorf("expected tree without 4, is %s", got)
	}
}

func TestZipperRemoveAllChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	c, _ := New(tshape(), createTreeForTest()).Down()
	c, err := c.Remove() // back on {1}
	if err != nil {
		t.Fatal("expected removal of 2 to succeed, didn't")
	}
	c, _ = c.Down() // focus on {3, [4, 5]}
	c, err = c.Remove()
	if err != nil {
		t.Fatal("expected removal of {3} to succeed, didn't")
	}
	if got := c.Root().String(); got != "{1, []}" {
		t.Errorf("expected the root to end up a childless branch, is %s", got)
	}
}

func TestZipperRemoveRoot(t *testing.T) {
	z := New(tshape(), createTreeForTest())
	w, err := z.Remove()
	if err != ErrRemoveRoot {
		t.Errorf("expected removal of the root to fail with ErrRemoveRoot, got %v", err)
	}
	if w.Node() != z.Node() {
		t.Error("expected failed removal to hand back the prior cursor, doesn't")
	}
}

// --- Child insertion -------------------------------------------------------

func TestZipperInsertChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	z := New(tshape(), createTreeForTest())
	z = z.InsertChild(lf(0))
	if got := z.Root().String(); got != "{1, [0, 2, {3, [4, 5]}]}" {
		t.Errorf("expected 0 to become the first child, tree is %s", got)
	}
}

func TestZipperAppendChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	z := New(tshape(), createTreeForTest())
	z = z.AppendChild(lf(9))
	if got := z.Root().String(); got != "{1, [2, {3, [4, 5]}, 9]}" {
		t.Errorf("expected 9 to become the last child, tree is %s", got)
	}
}

func TestZipperAppendChildPromotesLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	c, _ := New(tshape(), createTreeForTest()).Down() // focus on leaf 2
	c = c.AppendChild(lf(21))
	if !c.IsBranch() {
		t.Error("expected leaf 2 to be promoted to a branch, isn't")
	}
	if got := c.Root().String(); got != "{1, [{2, [21]}, {3, [4, 5]}]}" {
		t.Errorf("expected 2 to carry the single child 21, tree is %s", got)
	}
}

func TestZipperInsertChildPromotesLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	c, _ := New(tshape(), createTreeForTest()).Down()
	c, _ = c.Right()
	c, _ = c.Down() // focus on leaf 4
	c = c.InsertChild(lf(40))
	if got := c.Root().String(); got != "{1, [2, {3, [{4, [40]}, 5]}]}" {
		t.Errorf("expected 4 to carry the single child 40, tree is %s", got)
	}
}

func TestZipperPersistentCursors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "zipper")
	defer teardown()
	//
	root := createTreeForTest()
	c, _ := New(tshape(), root).Down() // focus on 2
	edited, err := c.InsertRight(lf(9))
	if err != nil {
		t.Fatalf("expected insert-right of 9 to succeed, got %v", err)
	}
	if got := edited.Root().String(); got != "{1, [2, 9, {3, [4, 5]}]}" {
		t.Errorf("expected edited lineage to hold 9, tree is %s", got)
	}
	// the older cursor still sees the unedited tree, sharing its structure
	if c.Root() != root {
		t.Error("expected the unedited cursor to keep the original view, doesn't")
	}
}
