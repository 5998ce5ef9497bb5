package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, audience, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func doRequest(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, uint64) {
	e := echo.New()
	var gotID uint64
	handler := mw(func(c echo.Context) error {
		gotID = SellerID(c)
		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, gotID
}

func TestRequireSeller(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	rec, id := doRequest(m.RequireSeller, "Bearer "+signToken(t, AudienceSeller, "42"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uint64(42), id)
}

func TestRequireSellerMissingToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	rec, _ := doRequest(m.RequireSeller, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSellerWrongAudience(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	rec, _ := doRequest(m.RequireSeller, "Bearer "+signToken(t, AudienceAdmin, "42"))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireSellerBadSignature(t *testing.T) {
	m := NewAuthMiddleware("other-secret")

	rec, _ := doRequest(m.RequireSeller, "Bearer "+signToken(t, AudienceSeller, "42"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSellerExpiredToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		Audience:  jwt.ClaimStrings{AudienceSeller},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, _ := doRequest(m.RequireSeller, "Bearer "+raw)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
