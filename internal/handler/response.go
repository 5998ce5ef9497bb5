package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/service"
)

type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type FailureResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respondOK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func respondOKMessage(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message, Data: data})
}

func respondCreated(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func respondPage(c echo.Context, data interface{}, page, perPage int, total int64) error {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    &Meta{CurrentPage: page, PerPage: perPage, Total: total, LastPage: lastPage},
	})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, FailureResponse{Success: false, Message: message})
}

// respondServiceError maps the three client error kinds: validation (422),
// not-found (404) and illegal status transition (400). Anything else is a 500
// with a generic message.
func respondServiceError(c echo.Context, err error, notFoundMessage string) error {
	var statusErr *model.StatusError
	if errors.As(err, &statusErr) {
		return respondError(c, http.StatusBadRequest, statusErr.Message)
	}
	var valErr *service.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusUnprocessableEntity, FailureResponse{
			Success: false,
			Message: "The given data was invalid",
			Errors:  valErr.Fields,
		})
	}
	if errors.Is(err, service.ErrNotFound) {
		return respondError(c, http.StatusNotFound, notFoundMessage)
	}
	if errors.Is(err, service.ErrForbidden) {
		return respondError(c, http.StatusForbidden, "Not allowed")
	}
	return respondError(c, http.StatusInternalServerError, "Internal server error")
}

func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, respondError(c, http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func pageParams(c echo.Context) (page, perPage, offset int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	if perPage <= 0 || perPage > 100 {
		perPage = 15
	}
	return page, perPage, (page - 1) * perPage
}

// amounts are stored in minor units and exposed in currency units.
func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}

// amountToCents rounds rather than truncates, 10.55 must not become 1054.
func amountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
