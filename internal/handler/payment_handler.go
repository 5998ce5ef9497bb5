package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/gateway"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/service"
)

// PaymentHandler serves the seller-facing payment endpoints and the gateway
// webhook receiver.
type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type PaymentResponse struct {
	ID            uint64  `json:"id"`
	OrderID       uint64  `json:"order_id"`
	SellerID      *uint64 `json:"seller_id"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Status        string  `json:"status"`
	SellerPaid    bool    `json:"seller_paid"`
	SellerPaidAt  *string `json:"seller_paid_at,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func toPaymentResponse(p *model.Payment) PaymentResponse {
	var paidAt *string
	if p.SellerPaidAt != nil {
		val := p.SellerPaidAt.Format(time.RFC3339)
		paidAt = &val
	}
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		SellerID:      p.SellerID,
		Amount:        centsToAmount(p.AmountCents),
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		SellerPaid:    p.SellerPaid,
		SellerPaidAt:  paidAt,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var body struct {
		OrderID uint64  `json:"order_id"`
		Amount  float64 `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	intent, err := h.svc.CreateIntent(c.Request().Context(), body.OrderID, amountToCents(body.Amount))
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"clientSecret": intent.ClientSecret,
	})
}

func (h *PaymentHandler) GetStatus(c echo.Context) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return err
	}
	view, err := h.svc.GetStatus(c.Request().Context(), orderID)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}

	resp := map[string]interface{}{
		"order_status":   string(view.OrderStatus),
		"payment_status": nil,
		"amount":         nil,
		"transaction_id": nil,
		"created_at":     nil,
	}
	if view.Payment != nil {
		resp["payment_status"] = string(view.Payment.Status)
		resp["amount"] = centsToAmount(view.Payment.AmountCents)
		resp["transaction_id"] = view.Payment.TransactionID
		resp["created_at"] = view.Payment.CreatedAt.Format(time.RFC3339)
	}
	return c.JSON(http.StatusOK, resp)
}

// Webhook receives the gateway event envelope. Unknown event types and events
// for missing orders are acknowledged with 200 so the gateway stops retrying.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	ev, err := gateway.ParseWebhook(payload)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := h.svc.HandleWebhook(c.Request().Context(), ev); err != nil {
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
