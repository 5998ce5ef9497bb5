package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	appmw "github.com/yasirSub/backend-mexo/internal/middleware"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/service"
)

// ProductHandler serves the seller-facing product CRUD.
type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type ProductResponse struct {
	ID            uint64   `json:"id"`
	SellerID      uint64   `json:"seller_id"`
	CategoryID    uint64   `json:"category_id,omitempty"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stock_quantity"`
	SKU           string   `json:"sku,omitempty"`
	Status        string   `json:"status"`
	Images        []string `json:"images"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func toProductResponse(p *model.Product) ProductResponse {
	images := []string{}
	if p.Images != "" {
		_ = json.Unmarshal([]byte(p.Images), &images)
	}
	return ProductResponse{
		ID:            p.ID,
		SellerID:      p.SellerID,
		CategoryID:    p.CategoryID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         centsToAmount(p.PriceCents),
		StockQuantity: p.StockQuantity,
		SKU:           p.SKU,
		Status:        string(p.Status),
		Images:        images,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

func toProductResponses(list []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for i := range list {
		out = append(out, toProductResponse(&list[i]))
	}
	return out
}

type productBody struct {
	CategoryID    uint64   `json:"category_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stock_quantity"`
	SKU           string   `json:"sku"`
	Images        []string `json:"images"`
}

func (b productBody) toInput() service.ProductInput {
	in := service.ProductInput{
		CategoryID:    b.CategoryID,
		Title:         b.Title,
		Description:   b.Description,
		PriceCents:    amountToCents(b.Price),
		StockQuantity: b.StockQuantity,
		SKU:           b.SKU,
	}
	if len(b.Images) > 0 {
		raw, _ := json.Marshal(b.Images)
		in.Images = string(raw)
	}
	return in
}

func (h *ProductHandler) List(c echo.Context) error {
	list, err := h.svc.ListBySeller(c.Request().Context(), appmw.SellerID(c))
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOK(c, toProductResponses(list))
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.svc.GetForSeller(c.Request().Context(), appmw.SellerID(c), id)
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOK(c, toProductResponse(p))
}

func (h *ProductHandler) Create(c echo.Context) error {
	var body productBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	p, err := h.svc.Create(c.Request().Context(), appmw.SellerID(c), body.toInput())
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondCreated(c, toProductResponse(p))
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body productBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	p, err := h.svc.UpdateForSeller(c.Request().Context(), appmw.SellerID(c), id, body.toInput())
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOKMessage(c, "Product updated successfully", toProductResponse(p))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteForSeller(c.Request().Context(), appmw.SellerID(c), id); err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOKMessage(c, "Product deleted successfully", nil)
}
