package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	appmw "github.com/yasirSub/backend-mexo/internal/middleware"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"github.com/yasirSub/backend-mexo/internal/service"
)

// NotificationHandler serves both the seller (/v1) and admin (/admin)
// notification endpoints; the scope comes from the auth middleware.
type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type NotificationResponse struct {
	ID        uint64                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	ReadAt    *string                `json:"read_at,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

func toNotificationResponse(n *model.Notification) NotificationResponse {
	var data map[string]interface{}
	if n.Data != "" {
		_ = json.Unmarshal([]byte(n.Data), &data)
	}
	var readAt *string
	if n.ReadAt != nil {
		val := n.ReadAt.Format(time.RFC3339)
		readAt = &val
	}
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      data,
		IsRead:    n.IsRead,
		ReadAt:    readAt,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func sellerScope(c echo.Context) repository.NotificationScope {
	id := appmw.SellerID(c)
	return repository.NotificationScope{SellerID: &id}
}

func adminScope(c echo.Context) repository.NotificationScope {
	id := appmw.AdminID(c)
	return repository.NotificationScope{AdminID: &id}
}

// CreateTest lets an admin push a notification to themselves, used by the
// dashboard to verify the notification pipeline end to end.
func (h *NotificationHandler) CreateTest(c echo.Context) error {
	var body struct {
		Type    string                 `json:"type"`
		Title   string                 `json:"title"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	adminID := appmw.AdminID(c)
	n := &model.Notification{
		AdminID: &adminID,
		Type:    body.Type,
		Title:   body.Title,
		Message: body.Message,
	}
	if body.Data != nil {
		raw, err := json.Marshal(body.Data)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "invalid request body")
		}
		n.Data = string(raw)
	}

	if err := h.svc.Create(c.Request().Context(), n); err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	return c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Test notification created",
		Data:    toNotificationResponse(n),
	})
}

func (h *NotificationHandler) list(c echo.Context, scope repository.NotificationScope) error {
	_, perPage, offset := pageParams(c)
	list, err := h.svc.List(c.Request().Context(), scope, perPage, offset)
	if err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	out := make([]NotificationResponse, 0, len(list))
	for i := range list {
		out = append(out, toNotificationResponse(&list[i]))
	}
	return respondOK(c, out)
}

func (h *NotificationHandler) ListForSeller(c echo.Context) error {
	return h.list(c, sellerScope(c))
}

func (h *NotificationHandler) ListForAdmin(c echo.Context) error {
	return h.list(c, adminScope(c))
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.MarkRead(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	return respondOKMessage(c, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllReadForSeller(c echo.Context) error {
	if err := h.svc.MarkAllRead(c.Request().Context(), sellerScope(c)); err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	return respondOKMessage(c, "All notifications marked as read", nil)
}

func (h *NotificationHandler) MarkAllReadForAdmin(c echo.Context) error {
	if err := h.svc.MarkAllRead(c.Request().Context(), adminScope(c)); err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	return respondOKMessage(c, "All notifications marked as read", nil)
}

func (h *NotificationHandler) UnreadCountForSeller(c echo.Context) error {
	count, err := h.svc.UnreadCount(c.Request().Context(), sellerScope(c))
	if err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	return respondOK(c, map[string]int64{"unread_count": count})
}

func (h *NotificationHandler) UnreadCountForAdmin(c echo.Context) error {
	count, err := h.svc.UnreadCount(c.Request().Context(), adminScope(c))
	if err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	return respondOK(c, map[string]int64{"unread_count": count})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	return respondOKMessage(c, "Notification deleted successfully", nil)
}

func (h *NotificationHandler) DeleteAllRead(c echo.Context) error {
	if err := h.svc.DeleteAllRead(c.Request().Context(), adminScope(c)); err != nil {
		return respondServiceError(c, err, "Notification not found")
	}
	return respondOKMessage(c, "Read notifications deleted", nil)
}
