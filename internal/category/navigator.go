package category

import "dream/internal/models"

// Navigator is the drill-down controller behind the category grid. It tracks
// the breadcrumb path into the tree for the active transaction type and the
// (main, sub) names picked so far.
//
// Navigator is not safe for concurrent use.
type Navigator struct {
	trees        Trees
	txType       models.TransactionType
	breadcrumbs  []Node
	visible      []Node
	selectedMain *string
	selectedSub  *string
}

// NewNavigator returns a navigator initialized for txType.
func NewNavigator(trees Trees, txType models.TransactionType) *Navigator {
	n := &Navigator{trees: trees}
	n.Initialize(txType)
	return n
}

// Initialize resets the navigator to the top level of the tree for txType
// with nothing selected.
func (n *Navigator) Initialize(txType models.TransactionType) {
	n.txType = txType
	n.breadcrumbs = nil
	n.visible = n.trees.Root(txType)
	n.selectedMain = nil
	n.selectedSub = nil
}

// Select picks a node from the visible grid. Branches are descended into;
// leaves complete the selection. The main name is fixed on the first descent
// and is always the top-level ancestor.
func (n *Navigator) Select(node Node) {
	if node.IsBranch() {
		if len(n.breadcrumbs) == 0 {
			n.selectedMain = models.Ptr(node.Name)
		}
		n.breadcrumbs = append(n.breadcrumbs, node)
		n.visible = node.Children
		return
	}

	if len(n.breadcrumbs) == 0 {
		n.selectedMain = models.Ptr(node.Name)
		n.selectedSub = nil
		return
	}
	n.selectedMain = models.Ptr(n.breadcrumbs[0].Name)
	n.selectedSub = models.Ptr(node.Name)
}

// SelectID selects the visible node with the given id. It reports false and
// leaves the state untouched when no visible node matches.
func (n *Navigator) SelectID(id string) (Node, bool) {
	for _, node := range n.visible {
		if node.ID == id {
			n.Select(node)
			return node, true
		}
	}
	return Node{}, false
}

// Ascend goes back one level. Returning to the top level clears the
// selection.
func (n *Navigator) Ascend() {
	if len(n.breadcrumbs) == 0 {
		return
	}
	n.breadcrumbs = n.breadcrumbs[:len(n.breadcrumbs)-1]
	if len(n.breadcrumbs) == 0 {
		n.visible = n.trees.Root(n.txType)
		n.selectedMain = nil
		n.selectedSub = nil
		return
	}
	n.visible = n.breadcrumbs[len(n.breadcrumbs)-1].Children
}

// IsSelected reports whether node should be highlighted in the current grid.
func (n *Navigator) IsSelected(node Node) bool {
	if n.selectedSub != nil && node.Name == *n.selectedSub {
		return true
	}
	return n.selectedMain != nil && node.Name == *n.selectedMain &&
		n.selectedSub == nil && len(n.breadcrumbs) == 0
}

// RestoreFrom rebuilds the view for an already classified transaction. With a
// sub-category under a branch the view opens one level down; otherwise it
// opens at the top level with nothing selected. Unknown categories behave
// like Initialize. The stored pair is trusted and not checked against the
// branch's children.
func (n *Navigator) RestoreFrom(txType models.TransactionType, category string, subCategory *string) {
	n.Initialize(txType)

	top, ok := n.trees.Root(txType).Find(category)
	if !ok {
		return
	}
	if subCategory != nil && top.IsBranch() {
		n.breadcrumbs = []Node{top}
		n.visible = top.Children
		n.selectedMain = models.Ptr(category)
		n.selectedSub = models.Ptr(*subCategory)
	}
}

// Type is the transaction type whose tree is in play.
func (n *Navigator) Type() models.TransactionType {
	return n.txType
}

// Breadcrumbs returns the path of branches descended into, root first.
func (n *Navigator) Breadcrumbs() []Node {
	out := make([]Node, len(n.breadcrumbs))
	copy(out, n.breadcrumbs)
	return out
}

// Visible returns the nodes currently shown in the grid.
func (n *Navigator) Visible() []Node {
	out := make([]Node, len(n.visible))
	copy(out, n.visible)
	return out
}

// Selection returns the main and sub names picked so far. Either may be nil.
func (n *Navigator) Selection() (main, sub *string) {
	return n.selectedMain, n.selectedSub
}
