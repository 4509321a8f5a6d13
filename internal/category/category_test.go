package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/homeledger/internal/category"
)

func testCategories() []*category.Category {
	return []*category.Category{
		{
			Name: "Groceries",
			Type: category.TypeExpense,
			Subcategories: []category.Subcategory{
				{Name: "Vegetables"},
				{Name: "Dairy"},
			},
		},
		{
			Name: "Fuel",
			Type: category.TypeExpense,
		},
	}
}

func TestSelection_SetCategoryClearsSubcategory(t *testing.T) {
	categories := testCategories()

	var sel category.Selection
	sel.SetCategory("Groceries")
	require.NoError(t, sel.SetSubcategory("Dairy", categories))
	require.Equal(t, "Dairy", sel.Subcategory)

	sel.SetCategory("Fuel")
	assert.Equal(t, "Fuel", sel.Category)
	assert.Empty(t, sel.Subcategory, "changing category must reset subcategory")

	// Re-selecting the same category keeps the subcategory.
	sel.SetCategory("Fuel")
	sel.SetCategory("Groceries")
	require.NoError(t, sel.SetSubcategory("Vegetables", categories))
	sel.SetCategory("Groceries")
	assert.Equal(t, "Vegetables", sel.Subcategory)
}

func TestSelection_Options(t *testing.T) {
	categories := testCategories()

	var sel category.Selection
	sel.SetCategory("Groceries")

	opts := sel.Options(categories)
	require.Len(t, opts, 2)
	assert.Equal(t, "Vegetables", opts[0].Name)

	// No subcategories means the control is disabled.
	sel.SetCategory("Fuel")
	assert.Empty(t, sel.Options(categories))

	sel.SetCategory("Unknown")
	assert.Empty(t, sel.Options(categories))
}

func TestSelection_SetSubcategory(t *testing.T) {
	categories := testCategories()

	var sel category.Selection
	sel.SetCategory("Groceries")

	assert.ErrorIs(t, sel.SetSubcategory("Petrol", categories), category.ErrUnknownSubcategory)
	assert.Empty(t, sel.Subcategory)

	require.NoError(t, sel.SetSubcategory("Dairy", categories))
	require.NoError(t, sel.SetSubcategory("", categories))
	assert.Empty(t, sel.Subcategory)

	sel.SetCategory("Fuel")
	assert.ErrorIs(t, sel.SetSubcategory("Dairy", categories), category.ErrUnknownSubcategory)
}

func TestCategory_HasSubcategory(t *testing.T) {
	c := testCategories()[0]
	assert.True(t, c.HasSubcategory("Dairy"))
	assert.False(t, c.HasSubcategory("dairy"))
	assert.False(t, c.HasSubcategory(""))
}
