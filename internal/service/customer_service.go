package service

import (
	"context"
	"errors"

	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

type CustomerService interface {
	Get(ctx context.Context, id uint64) (*model.Customer, error)
	List(ctx context.Context, isActive *bool, limit, offset int) ([]model.Customer, int64, error)
	ToggleStatus(ctx context.Context, id uint64) (*model.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Get(ctx context.Context, id uint64) (*model.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *customerService) List(ctx context.Context, isActive *bool, limit, offset int) ([]model.Customer, int64, error) {
	return s.repo.List(ctx, isActive, limit, offset)
}

func (s *customerService) ToggleStatus(ctx context.Context, id uint64) (*model.Customer, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.IsActive = !c.IsActive
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
