package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/service"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

type CategoryResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toCategoryResponse(cat *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Slug:        cat.Slug,
		Description: cat.Description,
		IsActive:    cat.IsActive,
		CreatedAt:   cat.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   cat.UpdatedAt.Format(time.RFC3339),
	}
}

func toCategoryResponses(list []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, toCategoryResponse(&list[i]))
	}
	return out
}

// ListActive is the seller-facing category listing under /v1.
func (h *CategoryHandler) ListActive(c echo.Context) error {
	list, err := h.svc.ListActive(c.Request().Context())
	if err != nil {
		return respondServiceError(c, err, "Category not found")
	}
	return respondOK(c, toCategoryResponses(list))
}

func (h *CategoryHandler) List(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondServiceError(c, err, "Category not found")
	}
	return respondOK(c, toCategoryResponses(list))
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	cat, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Category not found")
	}
	return respondOK(c, toCategoryResponse(cat))
}

type categoryBody struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var body categoryBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	cat, err := h.svc.Create(c.Request().Context(), service.CategoryInput{
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err, "Category not found")
	}
	return respondCreated(c, toCategoryResponse(cat))
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body categoryBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	cat, err := h.svc.Update(c.Request().Context(), id, service.CategoryInput{
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err, "Category not found")
	}
	return respondOKMessage(c, "Category updated successfully", toCategoryResponse(cat))
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err, "Category not found")
	}
	return respondOKMessage(c, "Category deleted successfully", nil)
}
