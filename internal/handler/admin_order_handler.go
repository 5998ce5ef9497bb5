package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"github.com/yasirSub/backend-mexo/internal/service"
)

type AdminOrderHandler struct {
	svc service.OrderService
}

func NewAdminOrderHandler(svc service.OrderService) *AdminOrderHandler {
	return &AdminOrderHandler{svc: svc}
}

func parseDateParam(c echo.Context, name string) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func (h *AdminOrderHandler) List(c echo.Context) error {
	page, perPage, offset := pageParams(c)

	f := repository.OrderListFilter{
		Status:   model.OrderStatus(c.QueryParam("status")),
		FromDate: parseDateParam(c, "from_date"),
		ToDate:   parseDateParam(c, "to_date"),
		Limit:    perPage,
		Offset:   offset,
	}
	if raw := c.QueryParam("seller_id"); raw != "" {
		f.SellerID, _ = strconv.ParseUint(raw, 10, 64)
	}

	list, total, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondPage(c, toOrderResponses(list), page, perPage, total)
}

func (h *AdminOrderHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOK(c, toOrderResponse(o))
}

// UpdateStatus overwrites the fulfillment status with no transition guard.
func (h *AdminOrderHandler) UpdateStatus(c echo.Context) error {
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

	o, err := h.svc.UpdateStatusByAdmin(c.Request().Context(), id, model.OrderStatus(body.Status))
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOKMessage(c, "Order status updated successfully", toOrderResponse(o))
}
