package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	AudienceSeller = "seller"
	AudienceAdmin  = "admin"
)

// AuthMiddleware verifies bearer tokens scoped by issuer audience. Seller
// tokens carry aud=seller, admin tokens aud=admin; the subject is the account
// id. Token issuance happens in the separate auth service.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

func (m *AuthMiddleware) parse(c echo.Context, audience string) (uint64, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if !claims.VerifyAudience(audience, true) {
		return 0, echo.NewHTTPError(http.StatusForbidden, "token not valid for this API")
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return id, nil
}

func (m *AuthMiddleware) RequireSeller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := m.parse(c, AudienceSeller)
		if err != nil {
			return err
		}
		c.Set("seller_id", id)
		return next(c)
	}
}

func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := m.parse(c, AudienceAdmin)
		if err != nil {
			return err
		}
		c.Set("admin_id", id)
		return next(c)
	}
}

func SellerID(c echo.Context) uint64 {
	id, _ := c.Get("seller_id").(uint64)
	return id
}

func AdminID(c echo.Context) uint64 {
	id, _ := c.Get("admin_id").(uint64)
	return id
}
