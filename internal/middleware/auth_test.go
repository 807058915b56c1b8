package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims *services.IdentityClaims
	err    error
}

func (v *stubVerifier) Verify(string) (*services.IdentityClaims, error) {
	return v.claims, v.err
}

func validClaims(userID uuid.UUID, email string) *services.IdentityClaims {
	claims := &services.IdentityClaims{Email: email}
	claims.Subject = userID.String()
	return claims
}

func protectedApp(verifier TokenVerifier) http.Handler {
	app := drift.New()
	app.Use(Auth(verifier))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{
			"user_id": GetUserID(c).String(),
			"email":   GetUserEmail(c),
		})
	})
	return app
}

func TestAuth_MissingAuthorizationHeader(t *testing.T) {
	app := protectedApp(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "AUTH_HEADER")
}

func TestAuth_InvalidAuthorizationFormat(t *testing.T) {
	app := protectedApp(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_HEADER")
}

func TestAuth_RejectedToken(t *testing.T) {
	app := protectedApp(&stubVerifier{err: errors.New("bad signature")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_TOKEN")
}

func TestAuth_NonUUIDSubject(t *testing.T) {
	claims := &services.IdentityClaims{Email: "a@b.com"}
	claims.Subject = "not-a-uuid"
	app := protectedApp(&stubVerifier{claims: claims})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_SUBJECT")
}

func TestAuth_SetsIdentityOnContext(t *testing.T) {
	userID := uuid.New()
	app := protectedApp(&stubVerifier{claims: validClaims(userID, "a@b.com")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "a@b.com")
}
