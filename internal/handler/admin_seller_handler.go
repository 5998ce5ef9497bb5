package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/service"
)

type AdminSellerHandler struct {
	svc        service.SellerService
	productSvc service.ProductService
}

func NewAdminSellerHandler(svc service.SellerService, productSvc service.ProductService) *AdminSellerHandler {
	return &AdminSellerHandler{svc: svc, productSvc: productSvc}
}

type SellerResponse struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	BusinessName    string `json:"business_name"`
	ContactPerson   string `json:"contact_person"`
	Phone           string `json:"phone"`
	Address         string `json:"address,omitempty"`
	BusinessAddress string `json:"business_address,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	Pincode         string `json:"pincode,omitempty"`
	GSTIN           string `json:"gstin,omitempty"`
	PAN             string `json:"pan,omitempty"`
	Status          string `json:"status"`
	ProfilePicture  string `json:"profile_picture,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func toSellerResponse(s *model.Seller) SellerResponse {
	businessName := s.BusinessName
	if businessName == "" {
		businessName = s.Name
	}
	contactPerson := s.ContactPerson
	if contactPerson == "" {
		contactPerson = s.Name
	}
	return SellerResponse{
		ID:              s.ID,
		Name:            s.Name,
		Email:           s.Email,
		BusinessName:    businessName,
		ContactPerson:   contactPerson,
		Phone:           s.Phone,
		Address:         s.Address,
		BusinessAddress: s.BusinessAddress,
		City:            s.City,
		State:           s.State,
		Pincode:         s.Pincode,
		GSTIN:           s.GSTIN,
		PAN:             s.PAN,
		Status:          string(s.Status),
		ProfilePicture:  s.ProfilePicture,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *AdminSellerHandler) List(c echo.Context) error {
	page, perPage, offset := pageParams(c)
	status := model.SellerStatus(c.QueryParam("status"))

	list, total, err := h.svc.List(c.Request().Context(), status, perPage, offset)
	if err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	out := make([]SellerResponse, 0, len(list))
	for i := range list {
		out = append(out, toSellerResponse(&list[i]))
	}
	return respondPage(c, out, page, perPage, total)
}

func (h *AdminSellerHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	s, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	return respondOK(c, toSellerResponse(s))
}

func (h *AdminSellerHandler) Products(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.svc.Get(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	list, err := h.productSvc.ListBySeller(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	return respondOK(c, toProductResponses(list))
}

func (h *AdminSellerHandler) Approve(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	s, err := h.svc.Approve(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	return respondOKMessage(c, "Seller approved successfully", toSellerResponse(s))
}

func (h *AdminSellerHandler) Reject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	s, err := h.svc.Reject(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	return respondOKMessage(c, "Seller rejected", toSellerResponse(s))
}

func (h *AdminSellerHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	return respondOKMessage(c, "Seller deleted successfully", nil)
}
