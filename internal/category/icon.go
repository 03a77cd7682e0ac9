package category

import "dream/internal/models"

// FallbackIcon is returned for category names that no tree knows about.
const FallbackIcon = "HelpCircle"

// ResolveIcon maps a stored (category, subCategory) pair back to an icon.
// The sub-category is looked up among the category's children and then their
// children; a miss falls back to the category's own icon.
func (t Trees) ResolveIcon(txType models.TransactionType, category string, subCategory *string) string {
	top, ok := t.Root(txType).Find(category)
	if !ok {
		return FallbackIcon
	}
	if subCategory == nil {
		return top.Icon
	}
	if node, ok := top.descendant(*subCategory); ok {
		return node.Icon
	}
	return top.Icon
}

// Classifies reports whether category is a top-level node of txType's tree
// and subCategory, when set, names a node below it.
func (t Trees) Classifies(txType models.TransactionType, category string, subCategory *string) bool {
	top, ok := t.Root(txType).Find(category)
	if !ok {
		return false
	}
	if subCategory == nil {
		return true
	}
	_, ok = top.descendant(*subCategory)
	return ok
}

// descendant finds name among n's children, then their children.
func (n Node) descendant(name string) (Node, bool) {
	for _, child := range n.Children {
		if child.Name == name {
			return child, true
		}
	}
	for _, child := range n.Children {
		for _, grandchild := range child.Children {
			if grandchild.Name == name {
				return grandchild, true
			}
		}
	}
	return Node{}, false
}
