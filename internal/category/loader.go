package category

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTree reads category trees from a YAML file shaped like
//
//	expense:
//	  - id: food
//	    name: 餐饮
//	    icon: Utensils
//	    color: bg-orange-100 text-orange-600
//	    children:
//	      - {id: breakfast, name: 早餐, icon: Coffee}
//	income:
//	  - {id: salary, name: 工资, icon: Banknote}
func LoadTree(path string) (Trees, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Trees{}, fmt.Errorf("read category tree: %w", err)
	}
	return ParseTree(data)
}

// ParseTree decodes and validates YAML category trees.
func ParseTree(data []byte) (Trees, error) {
	var trees Trees
	if err := yaml.Unmarshal(data, &trees); err != nil {
		return Trees{}, fmt.Errorf("decode category tree: %w", err)
	}
	if err := trees.Validate(); err != nil {
		return Trees{}, err
	}
	return trees, nil
}

// Validate checks that both trees are non-empty, every node has an id and a
// name, ids are unique within a tree and top-level names are unique.
func (t Trees) Validate() error {
	var errs []error
	if len(t.Expense) == 0 {
		errs = append(errs, errors.New("expense tree is empty"))
	}
	if len(t.Income) == 0 {
		errs = append(errs, errors.New("income tree is empty"))
	}
	errs = append(errs, validateTree("expense", t.Expense)...)
	errs = append(errs, validateTree("income", t.Income)...)
	return errors.Join(errs...)
}

func validateTree(label string, tree Tree) []error {
	var errs []error
	ids := make(map[string]bool)
	names := make(map[string]bool)

	var walk func(nodes []Node, depth int)
	walk = func(nodes []Node, depth int) {
		for _, n := range nodes {
			if n.ID == "" || n.Name == "" {
				errs = append(errs, fmt.Errorf("%s tree: node %q needs both id and name", label, n.ID+n.Name))
			}
			if n.ID != "" {
				if ids[n.ID] {
					errs = append(errs, fmt.Errorf("%s tree: duplicate id %q", label, n.ID))
				}
				ids[n.ID] = true
			}
			if depth == 0 {
				if names[n.Name] {
					errs = append(errs, fmt.Errorf("%s tree: duplicate top-level name %q", label, n.Name))
				}
				names[n.Name] = true
			}
			walk(n.Children, depth+1)
		}
	}
	walk(tree, 0)
	return errs
}
