package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appmw "github.com/yasirSub/backend-mexo/internal/middleware"
	"github.com/yasirSub/backend-mexo/internal/service"
)

// ProfileHandler serves the authenticated seller's own profile and store
// settings.
type ProfileHandler struct {
	sellerSvc service.SellerService
	storeSvc  service.StoreSettingService
}

func NewProfileHandler(sellerSvc service.SellerService, storeSvc service.StoreSettingService) *ProfileHandler {
	return &ProfileHandler{sellerSvc: sellerSvc, storeSvc: storeSvc}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	s, err := h.sellerSvc.Get(c.Request().Context(), appmw.SellerID(c))
	if err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	return respondOK(c, toSellerResponse(s))
}

func (h *ProfileHandler) Update(c echo.Context) error {
	var body struct {
		Name            string `json:"name"`
		BusinessName    string `json:"business_name"`
		ContactPerson   string `json:"contact_person"`
		Phone           string `json:"phone"`
		Address         string `json:"address"`
		BusinessAddress string `json:"business_address"`
		City            string `json:"city"`
		State           string `json:"state"`
		Pincode         string `json:"pincode"`
		GSTIN           string `json:"gstin"`
		PAN             string `json:"pan"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	s, err := h.sellerSvc.UpdateProfile(c.Request().Context(), appmw.SellerID(c), service.SellerProfileInput{
		Name:            body.Name,
		BusinessName:    body.BusinessName,
		ContactPerson:   body.ContactPerson,
		Phone:           body.Phone,
		Address:         body.Address,
		BusinessAddress: body.BusinessAddress,
		City:            body.City,
		State:           body.State,
		Pincode:         body.Pincode,
		GSTIN:           body.GSTIN,
		PAN:             body.PAN,
	})
	if err != nil {
		return respondServiceError(c, err, "Seller not found")
	}
	return respondOKMessage(c, "Profile updated successfully", toSellerResponse(s))
}

type storeSettingBody struct {
	PickupEnabled    bool    `json:"pickup_enabled"`
	MinOrderAmount   float64 `json:"min_order_amount"`
	ShippingPolicy   string  `json:"shipping_policy"`
	SupportEmail     string  `json:"support_email"`
	ContactPhone     string  `json:"contact_phone"`
	OpeningHours     string  `json:"opening_hours"`
	AutoAcceptOrders bool    `json:"auto_accept_orders"`
	DeliveryRadiusKm float64 `json:"delivery_radius_km"`
}

func (h *ProfileHandler) GetStoreSettings(c echo.Context) error {
	st, err := h.storeSvc.GetBySeller(c.Request().Context(), appmw.SellerID(c))
	if err != nil {
		return respondServiceError(c, err, "Store settings not found")
	}
	return respondOK(c, map[string]interface{}{
		"pickup_enabled":     st.PickupEnabled,
		"min_order_amount":   centsToAmount(st.MinOrderCents),
		"shipping_policy":    st.ShippingPolicy,
		"support_email":      st.SupportEmail,
		"contact_phone":      st.ContactPhone,
		"opening_hours":      st.OpeningHours,
		"auto_accept_orders": st.AutoAcceptOrders,
		"delivery_radius_km": st.DeliveryRadiusKm,
	})
}

func (h *ProfileHandler) UpdateStoreSettings(c echo.Context) error {
	var body storeSettingBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	st, err := h.storeSvc.Update(c.Request().Context(), appmw.SellerID(c), service.StoreSettingInput{
		PickupEnabled:    body.PickupEnabled,
		MinOrderCents:    amountToCents(body.MinOrderAmount),
		ShippingPolicy:   body.ShippingPolicy,
		SupportEmail:     body.SupportEmail,
		ContactPhone:     body.ContactPhone,
		OpeningHours:     body.OpeningHours,
		AutoAcceptOrders: body.AutoAcceptOrders,
		DeliveryRadiusKm: body.DeliveryRadiusKm,
	})
	if err != nil {
		return respondServiceError(c, err, "Store settings not found")
	}
	return respondOKMessage(c, "Store settings updated successfully", map[string]interface{}{
		"pickup_enabled":     st.PickupEnabled,
		"min_order_amount":   centsToAmount(st.MinOrderCents),
		"auto_accept_orders": st.AutoAcceptOrders,
	})
}
