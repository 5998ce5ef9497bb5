package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	IsActive    *bool
}

type CategoryService interface {
	Create(ctx context.Context, in CategoryInput) (*model.Category, error)
	Get(ctx context.Context, id uint64) (*model.Category, error)
	Update(ctx context.Context, id uint64, in CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.Category, error)
	ListActive(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func (s *categoryService) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	slug := in.Slug
	if slug == "" {
		slug = slugify(name)
	}
	c := &model.Category{
		Name:        name,
		Slug:        slug,
		Description: in.Description,
		IsActive:    true,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Get(ctx context.Context, id uint64) (*model.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id uint64, in CategoryInput) (*model.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		c.Name = name
	}
	if in.Slug != "" {
		c.Slug = in.Slug
	}
	if in.Description != "" {
		c.Description = in.Description
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) ListActive(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListActive(ctx)
}
