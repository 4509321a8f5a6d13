package category

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	ListCategories(ctx context.Context, householdID uuid.UUID) ([]*Category, error)
	GetCategoryByName(ctx context.Context, householdID uuid.UUID, name string) (*Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, householdID uuid.UUID) ([]*Category, error) {
	return s.repo.ListCategories(ctx, householdID)
}

// Validate checks that a category exists and, when a subcategory is
// given, that it belongs to the category's own set.
func (s *Service) Validate(ctx context.Context, householdID uuid.UUID, categoryName, subcategory string) error {
	c, err := s.repo.GetCategoryByName(ctx, householdID, categoryName)
	if err != nil {
		return err
	}

	if subcategory != "" && !c.HasSubcategory(subcategory) {
		return ErrUnknownSubcategory
	}

	return nil
}
