package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"github.com/yasirSub/backend-mexo/internal/service"
)

type AdminPaymentHandler struct {
	svc service.PaymentService
}

func NewAdminPaymentHandler(svc service.PaymentService) *AdminPaymentHandler {
	return &AdminPaymentHandler{svc: svc}
}

func (h *AdminPaymentHandler) List(c echo.Context) error {
	f := repository.PaymentListFilter{
		FromDate: parseDateParam(c, "from_date"),
		ToDate:   parseDateParam(c, "to_date"),
	}
	switch status := c.QueryParam("status"); status {
	case "", "all":
	case "paid_to_seller":
		f.PaidToSeller = true
	default:
		f.Status = model.PaymentStatus(status)
	}
	if raw := c.QueryParam("seller_id"); raw != "" {
		f.SellerID, _ = strconv.ParseUint(raw, 10, 64)
	}

	list, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return respondServiceError(c, err, "Payment not found")
	}

	out := make([]PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, toPaymentResponse(&list[i]))
	}
	return respondOK(c, out)
}

func (h *AdminPaymentHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Payment not found")
	}
	return respondOK(c, toPaymentResponse(p))
}

func (h *AdminPaymentHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	p, err := h.svc.UpdateStatus(c.Request().Context(), id, model.PaymentStatus(body.Status), body.Notes)
	if err != nil {
		return respondServiceError(c, err, "Payment not found")
	}
	return respondOKMessage(c, "Payment status updated successfully", toPaymentResponse(p))
}

func (h *AdminPaymentHandler) MarkPaid(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.svc.MarkPaid(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Payment not found")
	}
	return respondOKMessage(c, "Payment marked as paid to seller successfully", toPaymentResponse(p))
}
