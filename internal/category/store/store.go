package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Subcategories live as a jsonb array of {name} objects on the category row.
func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var typeStr string

	var subcategories []byte

	if err := s.Scan(&c.ID, &c.HouseholdID, &c.Name, &typeStr, &subcategories, &c.Color); err != nil {
		return nil, err
	}

	c.Type = category.Type(typeStr)

	if len(subcategories) > 0 {
		if err := json.Unmarshal(subcategories, &c.Subcategories); err != nil {
			return nil, fmt.Errorf("decoding subcategories: %w", err)
		}
	}

	return &c, nil
}

const selectCategoryColumns = `id, household_id, name, type, subcategories, color`

func (s *Store) ListCategories(ctx context.Context, householdID uuid.UUID) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE household_id = $1
		ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

func (s *Store) GetCategoryByName(ctx context.Context, householdID uuid.UUID, name string) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE household_id = $1 AND name = $2`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, householdID, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}
