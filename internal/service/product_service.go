package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

type ProductInput struct {
	CategoryID    uint64
	Title         string
	Description   string
	PriceCents    int64
	StockQuantity int
	SKU           string
	Images        string
}

type ProductService interface {
	Create(ctx context.Context, sellerID uint64, in ProductInput) (*model.Product, error)
	GetForSeller(ctx context.Context, sellerID, id uint64) (*model.Product, error)
	UpdateForSeller(ctx context.Context, sellerID, id uint64, in ProductInput) (*model.Product, error)
	DeleteForSeller(ctx context.Context, sellerID, id uint64) error
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error)
	List(ctx context.Context, f repository.ProductListFilter) ([]model.Product, int64, error)
	Get(ctx context.Context, id uint64) (*model.Product, error)
	Approve(ctx context.Context, id uint64) (*model.Product, error)
	Reject(ctx context.Context, id uint64) (*model.Product, error)
	UpdateStatus(ctx context.Context, id uint64, status model.ProductStatus) (*model.Product, error)
	Delete(ctx context.Context, id uint64) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if in.PriceCents < 0 {
		return NewValidationError("price", "price must not be negative")
	}
	if in.StockQuantity < 0 {
		return NewValidationError("stock_quantity", "stock quantity must not be negative")
	}
	return nil
}

// Create registers a product for moderation. New products start pending until
// an admin approves them.
func (s *productService) Create(ctx context.Context, sellerID uint64, in ProductInput) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	p := &model.Product{
		SellerID:      sellerID,
		CategoryID:    in.CategoryID,
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		PriceCents:    in.PriceCents,
		StockQuantity: in.StockQuantity,
		SKU:           in.SKU,
		Status:        model.ProductStatusPending,
		Images:        in.Images,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) GetForSeller(ctx context.Context, sellerID, id uint64) (*model.Product, error) {
	p, err := s.repo.FindBySeller(ctx, sellerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *productService) UpdateForSeller(ctx context.Context, sellerID, id uint64, in ProductInput) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	p, err := s.GetForSeller(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	p.CategoryID = in.CategoryID
	p.Title = strings.TrimSpace(in.Title)
	p.Description = in.Description
	p.PriceCents = in.PriceCents
	p.StockQuantity = in.StockQuantity
	p.SKU = in.SKU
	if in.Images != "" {
		p.Images = in.Images
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) DeleteForSeller(ctx context.Context, sellerID, id uint64) error {
	p, err := s.GetForSeller(ctx, sellerID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p.ID)
}

func (s *productService) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *productService) List(ctx context.Context, f repository.ProductListFilter) ([]model.Product, int64, error) {
	return s.repo.List(ctx, f)
}

func (s *productService) Get(ctx context.Context, id uint64) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *productService) Approve(ctx context.Context, id uint64) (*model.Product, error) {
	return s.UpdateStatus(ctx, id, model.ProductStatusActive)
}

func (s *productService) Reject(ctx context.Context, id uint64) (*model.Product, error) {
	return s.UpdateStatus(ctx, id, model.ProductStatusInactive)
}

func (s *productService) UpdateStatus(ctx context.Context, id uint64, status model.ProductStatus) (*model.Product, error) {
	if !status.Valid() {
		return nil, NewValidationError("status", "status must be one of active, inactive, pending")
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Status = status
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
