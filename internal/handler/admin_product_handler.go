package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"github.com/yasirSub/backend-mexo/internal/service"
)

type AdminProductHandler struct {
	svc service.ProductService
}

func NewAdminProductHandler(svc service.ProductService) *AdminProductHandler {
	return &AdminProductHandler{svc: svc}
}

func (h *AdminProductHandler) List(c echo.Context) error {
	page, perPage, offset := pageParams(c)
	f := repository.ProductListFilter{
		Status: model.ProductStatus(c.QueryParam("status")),
		Limit:  perPage,
		Offset: offset,
	}
	if raw := c.QueryParam("seller_id"); raw != "" {
		f.SellerID, _ = strconv.ParseUint(raw, 10, 64)
	}

	list, total, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondPage(c, toProductResponses(list), page, perPage, total)
}

func (h *AdminProductHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOK(c, toProductResponse(p))
}

func (h *AdminProductHandler) Approve(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.svc.Approve(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOKMessage(c, "Product approved successfully", toProductResponse(p))
}

func (h *AdminProductHandler) Reject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.svc.Reject(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOKMessage(c, "Product rejected", toProductResponse(p))
}

func (h *AdminProductHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	p, err := h.svc.UpdateStatus(c.Request().Context(), id, model.ProductStatus(body.Status))
	if err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOKMessage(c, "Product status updated successfully", toProductResponse(p))
}

func (h *AdminProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err, "Product not found")
	}
	return respondOKMessage(c, "Product deleted successfully", nil)
}
