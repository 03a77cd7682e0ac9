package services

import (
	"dream/internal/category"
	"dream/internal/models"
)

// categoryService serves the configured category trees.
type categoryService struct {
	trees category.Trees
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(trees category.Trees) CategoryServicer {
	return &categoryService{trees: trees}
}

func (s *categoryService) Trees() category.Trees {
	return s.trees
}

func (s *categoryService) Tree(txType models.TransactionType) category.Tree {
	return s.trees.Root(txType)
}

func (s *categoryService) Names(txType models.TransactionType) []string {
	return s.trees.Root(txType).Names()
}

func (s *categoryService) ResolveIcon(txType models.TransactionType, categoryName string, subCategory *string) string {
	return s.trees.ResolveIcon(txType, categoryName, subCategory)
}
