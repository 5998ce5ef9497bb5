package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"github.com/yasirSub/backend-mexo/internal/service"
)

type DeliveryHandler struct {
	svc service.DeliveryService
}

func NewDeliveryHandler(svc service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

type TrackingResponse struct {
	ID          uint64 `json:"id"`
	OrderID     uint64 `json:"order_id"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toTrackingResponse(t *model.DeliveryTracking) TrackingResponse {
	return TrackingResponse{
		ID:          t.ID,
		OrderID:     t.OrderID,
		Status:      string(t.Status),
		Location:    t.Location,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func (h *DeliveryHandler) UpdateTracking(c echo.Context) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return err
	}
	var body struct {
		Status      string `json:"status"`
		Location    string `json:"location"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	t, err := h.svc.AddTracking(c.Request().Context(), orderID, model.DeliveryStatus(body.Status), body.Location, body.Description)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return c.JSON(http.StatusOK, toTrackingResponse(t))
}

func (h *DeliveryHandler) GetTracking(c echo.Context) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return err
	}
	view, err := h.svc.GetTracking(c.Request().Context(), orderID)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}

	history := make([]TrackingResponse, 0, len(view.History))
	for i := range view.History {
		history = append(history, toTrackingResponse(&view.History[i]))
	}
	var deliveryStatus interface{}
	if view.DeliveryStatus != nil {
		deliveryStatus = string(*view.DeliveryStatus)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"order_status":     string(view.OrderStatus),
		"delivery_status":  deliveryStatus,
		"tracking_history": history,
	})
}

func (h *DeliveryHandler) SearchOrders(c echo.Context) error {
	_, perPage, offset := pageParams(c)
	f := repository.OrderSearchFilter{
		Query:          c.QueryParam("query"),
		DeliveryStatus: model.DeliveryStatus(c.QueryParam("status")),
		FromDate:       parseDateParam(c, "date_from"),
		ToDate:         parseDateParam(c, "date_to"),
		Limit:          perPage,
		Offset:         offset,
	}
	list, err := h.svc.SearchOrders(c.Request().Context(), f)
	if err != nil {
		return respondServiceError(c, err, "Order not found")
	}
	return respondOK(c, toOrderResponses(list))
}
