package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, modify func(*http.Request)) (*httptest.ResponseRecorder, *Identity) {
	t.Helper()

	var captured *Identity
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := IdentityFromContext(r.Context()); ok {
			captured = &identity
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/points/balance", nil)
	modify(req)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"role":    "interviewer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	rec, identity := doRequest(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, domain.RoleInterviewer, identity.Role)
}

func TestAuth_DefaultRoleIsUser(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"user_id": 7})

	rec, identity := doRequest(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)
	assert.Equal(t, domain.RoleUser, identity.Role)
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{"user_id": 42})

	rec, _ := doRequest(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	rec, _ := doRequest(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MissingUserIDClaim(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"role": "admin"})

	rec, _ := doRequest(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_UnknownRole(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"user_id": 42, "role": "superuser"})

	rec, _ := doRequest(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	rec, _ := doRequest(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_HeaderFallback(t *testing.T) {
	rec, identity := doRequest(t, func(r *http.Request) {
		r.Header.Set("X-User-ID", "15")
		r.Header.Set("X-User-Role", "admin")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)
	assert.Equal(t, int64(15), identity.UserID)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestAuth_HeaderFallback_InvalidUserID(t *testing.T) {
	rec, _ := doRequest(t, func(r *http.Request) {
		r.Header.Set("X-User-ID", "abc")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_NoCredentials(t *testing.T) {
	rec, identity := doRequest(t, func(r *http.Request) {})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, identity)
}

func TestIdentityFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := IdentityFromContext(req.Context())

	assert.False(t, ok)
}
