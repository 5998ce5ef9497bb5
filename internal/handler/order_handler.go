package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	appmw "github.com/yasirSub/backend-mexo/internal/middleware"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/service"
)

// OrderHandler serves the seller-facing order endpoints under /seller and /v1.
type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type OrderItemResponse struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID              uint64              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	SellerID        uint64              `json:"seller_id"`
	CustomerID      uint64              `json:"customer_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone"`
	TotalAmount     float64             `json:"total_amount"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	PayoutStatus    string              `json:"payout_status"`
	ShippingAddress string              `json:"shipping_address"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	DeliveredAt     *string             `json:"delivered_at,omitempty"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
}

func toOrderResponse(o *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		productName := "Unknown Product"
		if it.Product != nil {
			productName = it.Product.Title
		}
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: productName,
			Quantity:    it.Quantity,
			Price:       centsToAmount(it.PriceCents),
			Subtotal:    centsToAmount(it.PriceCents * int64(it.Quantity)),
		})
	}
	customerName, customerEmail, customerPhone := "Guest Customer", "N/A", "N/A"
	if o.Customer != nil {
		customerName = o.Customer.Name
		customerEmail = o.Customer.Email
		if o.Customer.Phone != "" {
			customerPhone = o.Customer.Phone
		}
	}
	var deliveredAt *string
	if o.DeliveredAt != nil {
		val := o.DeliveredAt.Format(time.RFC3339)
		deliveredAt = &val
	}
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		SellerID:        o.SellerID,
		CustomerID:      o.CustomerID,
		CustomerName:    customerName,
		CustomerEmail:   customerEmail,
		CustomerPhone:   customerPhone,
		TotalAmount:     centsToAmount(o.TotalCents),
		Status:          string(o.Status),
		PaymentStatus:   o.PaymentStatus,
		PaymentMethod:   o.PaymentMethod,
		PayoutStatus:    string(o.PayoutStatus),
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		Items:           items,
		DeliveredAt:     deliveredAt,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
	}
}

func toOrderResponses(list []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for i := range list {
		out = append(out, toOrderResponse(&list[i]))
	}
	return out
}

func (h *OrderHandler) List(c echo.Context) error {
	sellerID := appmw.SellerID(c)
	status := model.OrderStatus(c.QueryParam("status"))
	if status == "all" {
		status = ""
	}
	list, err := h.svc.ListBySeller(c.Request().Context(), sellerID, status)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOK(c, toOrderResponses(list))
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.svc.GetForSeller(c.Request().Context(), appmw.SellerID(c), id)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOK(c, toOrderResponse(o))
}

func (h *OrderHandler) Ship(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		TrackingNumber string `json:"tracking_number"`
		Courier        string `json:"courier"`
	}
	_ = c.Bind(&body)

	o, err := h.svc.Ship(c.Request().Context(), appmw.SellerID(c), id, body.TrackingNumber, body.Courier)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOKMessage(c, "Order marked as shipped", map[string]interface{}{
		"id":              o.ID,
		"status":          string(o.Status),
		"tracking_number": body.TrackingNumber,
		"shipped_at":      time.Now().Format(time.RFC3339),
	})
}

func (h *OrderHandler) Deliver(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.svc.Deliver(c.Request().Context(), appmw.SellerID(c), id)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOKMessage(c, "Order marked as delivered", map[string]interface{}{
		"id":           o.ID,
		"status":       string(o.Status),
		"delivered_at": time.Now().Format(time.RFC3339),
	})
}

func (h *OrderHandler) Accept(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.svc.Accept(c.Request().Context(), appmw.SellerID(c), id)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOKMessage(c, "Order accepted", toOrderResponse(o))
}

func (h *OrderHandler) Reject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.svc.Reject(c.Request().Context(), appmw.SellerID(c), id)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOKMessage(c, "Order rejected", toOrderResponse(o))
}

// UpdateStatus is the seller-facing status patch. Unlike the admin endpoint it
// goes through the transition guards: each target status maps to the guarded
// transition that reaches it.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
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

	sellerID := appmw.SellerID(c)
	ctx := c.Request().Context()

	var o *model.Order
	switch model.OrderStatus(body.Status) {
	case model.OrderStatusConfirmed:
		o, err = h.svc.Accept(ctx, sellerID, id)
	case model.OrderStatusCancelled:
		o, err = h.svc.Reject(ctx, sellerID, id)
	case model.OrderStatusShipped:
		o, err = h.svc.Ship(ctx, sellerID, id, "", "")
	case model.OrderStatusDelivered:
		o, err = h.svc.Deliver(ctx, sellerID, id)
	default:
		return respondServiceError(c, service.NewValidationError("status", "status must be one of confirmed, cancelled, shipped, delivered"), "")
	}
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOKMessage(c, "Order status updated successfully", toOrderResponse(o))
}
