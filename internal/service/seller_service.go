package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

type SellerProfileInput struct {
	Name            string
	BusinessName    string
	ContactPerson   string
	Phone           string
	Address         string
	BusinessAddress string
	City            string
	State           string
	Pincode         string
	GSTIN           string
	PAN             string
}

type SellerService interface {
	Get(ctx context.Context, id uint64) (*model.Seller, error)
	List(ctx context.Context, status model.SellerStatus, limit, offset int) ([]model.Seller, int64, error)
	Approve(ctx context.Context, id uint64) (*model.Seller, error)
	Reject(ctx context.Context, id uint64) (*model.Seller, error)
	Delete(ctx context.Context, id uint64) error
	UpdateProfile(ctx context.Context, id uint64, in SellerProfileInput) (*model.Seller, error)
}

type sellerService struct {
	repo repository.SellerRepository
}

func NewSellerService(repo repository.SellerRepository) SellerService {
	return &sellerService{repo: repo}
}

func (s *sellerService) Get(ctx context.Context, id uint64) (*model.Seller, error) {
	sl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sl, nil
}

func (s *sellerService) List(ctx context.Context, status model.SellerStatus, limit, offset int) ([]model.Seller, int64, error) {
	return s.repo.List(ctx, status, limit, offset)
}

func (s *sellerService) Approve(ctx context.Context, id uint64) (*model.Seller, error) {
	sl, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sl.Status = model.SellerStatusActive
	if err := s.repo.Update(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *sellerService) Reject(ctx context.Context, id uint64) (*model.Seller, error) {
	sl, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sl.Status = model.SellerStatusInactive
	if err := s.repo.Update(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *sellerService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *sellerService) UpdateProfile(ctx context.Context, id uint64, in SellerProfileInput) (*model.Seller, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewValidationError("name", "name is required")
	}
	sl, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sl.Name = strings.TrimSpace(in.Name)
	sl.BusinessName = in.BusinessName
	sl.ContactPerson = in.ContactPerson
	sl.Phone = in.Phone
	sl.Address = in.Address
	sl.BusinessAddress = in.BusinessAddress
	sl.City = in.City
	sl.State = in.State
	sl.Pincode = in.Pincode
	sl.GSTIN = in.GSTIN
	sl.PAN = in.PAN
	if err := s.repo.Update(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}
