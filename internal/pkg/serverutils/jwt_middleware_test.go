package serverutils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newProtectedApp(resolve UserResolver) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/protected", NewJwtMiddleware(testSecret, resolve), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"user_id": UserIdFromCtx(ctx)})
	})
	return app
}

func allowAll(_ context.Context, _ uint) (bool, error) { return true, nil }

func request(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestJwtMiddlewareAcceptsValidToken(t *testing.T) {
	app := newProtectedApp(allowAll)
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp(allowAll)

	resp := request(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsWrongSecret(t *testing.T) {
	app := newProtectedApp(allowAll)
	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsExpiredToken(t *testing.T) {
	app := newProtectedApp(allowAll)
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsDeletedUser(t *testing.T) {
	app := newProtectedApp(func(_ context.Context, _ uint) (bool, error) {
		return false, nil
	})
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsMissingUserIdClaim(t *testing.T) {
	app := newProtectedApp(allowAll)
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
