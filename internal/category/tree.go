// Package category holds the income and expense category trees, the
// drill-down navigator used while classifying a transaction and the reverse
// lookup from stored names to icons.
package category

import "dream/internal/models"

// Node is one entry of a category tree. Transactions store the node's Name,
// never its ID.
type Node struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Icon      string `json:"icon" yaml:"icon"`
	ColorHint string `json:"color_hint,omitempty" yaml:"color,omitempty"`
	Children  []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsBranch reports whether the node has children to drill into.
func (n Node) IsBranch() bool {
	return len(n.Children) > 0
}

// Tree is an ordered list of top-level nodes.
type Tree []Node

// Find returns the top-level node with the given name.
func (t Tree) Find(name string) (Node, bool) {
	for _, n := range t {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Names lists the top-level names in tree order.
func (t Tree) Names() []string {
	names := make([]string, 0, len(t))
	for _, n := range t {
		names = append(names, n.Name)
	}
	return names
}

// Contains reports whether name is a top-level category of the tree.
func (t Tree) Contains(name string) bool {
	_, ok := t.Find(name)
	return ok
}

// Depth is the number of levels in the deepest path of the tree.
func (t Tree) Depth() int {
	depth := 0
	for _, n := range t {
		if d := 1 + Tree(n.Children).Depth(); d > depth {
			depth = d
		}
	}
	return depth
}

// Trees pairs the expense tree with the income tree.
type Trees struct {
	Expense Tree `json:"expense" yaml:"expense"`
	Income  Tree `json:"income" yaml:"income"`
}

// Root returns the tree in play for a transaction type.
func (t Trees) Root(txType models.TransactionType) Tree {
	if txType == models.TransactionTypeExpense {
		return t.Expense
	}
	return t.Income
}
