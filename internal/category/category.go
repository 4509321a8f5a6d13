package category

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("category not found")
	ErrUnknownSubcategory = errors.New("subcategory does not belong to category")
)

// Type tags a category as an income or an expense bucket.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type Subcategory struct {
	Name string
}

type Category struct {
	ID            uuid.UUID
	HouseholdID   uuid.UUID
	Name          string
	Type          Type
	Subcategories []Subcategory
	Color         string
}

// HasSubcategory reports whether name belongs to this category.
func (c *Category) HasSubcategory(name string) bool {
	for _, sc := range c.Subcategories {
		if sc.Name == name {
			return true
		}
	}

	return false
}

// Selection is the category/subcategory pair a form holds. Changing the
// category always clears the subcategory so the pair can never disagree.
type Selection struct {
	Category    string
	Subcategory string
}

// SetCategory switches the category and resets the subcategory.
func (s *Selection) SetCategory(name string) {
	if name == s.Category {
		return
	}

	s.Category = name
	s.Subcategory = ""
}

// SetSubcategory picks a subcategory; invalid picks for the current
// category are refused.
func (s *Selection) SetSubcategory(name string, categories []*Category) error {
	if name == "" {
		s.Subcategory = ""
		return nil
	}

	c := Find(categories, s.Category)
	if c == nil || !c.HasSubcategory(name) {
		return ErrUnknownSubcategory
	}

	s.Subcategory = name

	return nil
}

// Options returns the subcategory choices for the current category.
// An empty result means the subcategory control is disabled.
func (s Selection) Options(categories []*Category) []Subcategory {
	c := Find(categories, s.Category)
	if c == nil {
		return nil
	}

	return c.Subcategories
}

// Find looks a category up by name.
func Find(categories []*Category, name string) *Category {
	for _, c := range categories {
		if c.Name == name {
			return c
		}
	}

	return nil
}
