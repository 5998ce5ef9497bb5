package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/service"
)

type AdminCustomerHandler struct {
	svc service.CustomerService
}

func NewAdminCustomerHandler(svc service.CustomerService) *AdminCustomerHandler {
	return &AdminCustomerHandler{svc: svc}
}

type CustomerResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func toCustomerResponse(cu *model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        cu.ID,
		Name:      cu.Name,
		Email:     cu.Email,
		Phone:     cu.Phone,
		IsActive:  cu.IsActive,
		CreatedAt: cu.CreatedAt.Format(time.RFC3339),
	}
}

func (h *AdminCustomerHandler) List(c echo.Context) error {
	page, perPage, offset := pageParams(c)

	var isActive *bool
	if raw := c.QueryParam("is_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err == nil {
			isActive = &v
		}
	}

	list, total, err := h.svc.List(c.Request().Context(), isActive, perPage, offset)
	if err != nil {
		return respondServiceError(c, err, "Customer not found")
	}
	out := make([]CustomerResponse, 0, len(list))
	for i := range list {
		out = append(out, toCustomerResponse(&list[i]))
	}
	return respondPage(c, out, page, perPage, total)
}

func (h *AdminCustomerHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	cu, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Customer not found")
	}
	return respondOK(c, toCustomerResponse(cu))
}

func (h *AdminCustomerHandler) ToggleStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	cu, err := h.svc.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Customer not found")
	}
	message := "Customer blocked"
	if cu.IsActive {
		message = "Customer activated"
	}
	return respondOKMessage(c, message, toCustomerResponse(cu))
}
