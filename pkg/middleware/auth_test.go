package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifierRoundTrip(t *testing.T) {
	v := NewVerifier("test-secret")

	want := Identity{
		UserID:   "uid-1",
		Name:     "Alice",
		Email:    "alice@example.com",
		PhotoURL: "https://example.com/alice.png",
	}

	token, err := v.Generate(want, time.Hour)
	require.NoError(t, err)

	got, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewVerifier("secret-a").Generate(Identity{UserID: "uid-1", Name: "A"}, time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier("secret-b").Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	v := NewVerifier("test-secret")
	token, err := v.Generate(Identity{UserID: "uid-1", Name: "A"}, -time.Minute)
	require.NoError(t, err)

	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewVerifier("test-secret").Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func identityEcho(t *testing.T, captured *Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIdentity(r.Context())
		require.True(t, ok)
		*captured = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireIdentityWithBearerToken(t *testing.T) {
	v := NewVerifier("test-secret")
	token, err := v.Generate(Identity{UserID: "uid-1", Name: "Alice", Email: "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	var got Identity
	handler := v.RequireIdentity(identityEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", got.UserID)
	assert.Equal(t, "Alice", got.Name)
}

func TestRequireIdentityMissingHeader(t *testing.T) {
	v := NewVerifier("test-secret")
	handler := v.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Equal(t, ErrMissingToken.Error(), envelope.Error.Message)
}

func TestRequireIdentityBadFormat(t *testing.T) {
	v := NewVerifier("test-secret")
	handler := v.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDevIdentityMiddleware(t *testing.T) {
	var got Identity
	handler := DevIdentityMiddleware(NewVerifier("unused").RequireIdentity(identityEcho(t, &got)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Dev-User-ID", "dev-uid")
	req.Header.Set("X-Dev-User-Email", "dev@example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev-uid", got.UserID)
	assert.Equal(t, "dev-uid", got.Name, "name falls back to the user id")
	assert.Equal(t, "dev@example.com", got.Email)
}

func TestDevIdentityMiddlewarePassThrough(t *testing.T) {
	handler := DevIdentityMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetIdentity(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
