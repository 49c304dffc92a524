package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/listyapp/listy/pkg/response"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// IdentityKey is the context key for the authenticated identity
const IdentityKey ContextKey = "identity"

// Identity is the resolved session identity supplied by the identity provider.
// The core trusts these values verbatim and never re-derives them.
type Identity struct {
	UserID   string
	Name     string
	Email    string
	PhotoURL string
}

// Claims are the JWT claims the identity provider places in a session token.
type Claims struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates session tokens issued by the identity provider.
type Verifier struct {
	secretKey []byte
}

// NewVerifier creates a verifier for HS256 session tokens signed with secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secretKey: []byte(secret)}
}

// Verify parses and validates a session token, returning the identity it carries.
func (v *Verifier) Verify(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.secretKey, nil
		},
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID:   claims.Subject,
		Name:     claims.Name,
		Email:    claims.Email,
		PhotoURL: claims.PhotoURL,
	}, nil
}

// Generate creates a signed session token for the given identity.
// Used by tests and local tooling; production tokens come from the provider.
func (v *Verifier) Generate(id Identity, ttl time.Duration) (string, error) {
	claims := &Claims{
		Name:     id.Name,
		Email:    id.Email,
		PhotoURL: id.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// RequireIdentity rejects requests without a valid bearer token and places the
// resolved identity on the request context.
func (v *Verifier) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentity(r.Context()); ok {
			// Already resolved (dev header middleware).
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, ErrMissingToken.Error())
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		identity, err := v.Verify(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DevIdentityMiddleware allows setting the identity via X-Dev-User-* headers
// (DEV ONLY). This makes it easy to exercise the API as different family
// members without a real identity provider.
func DevIdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-Dev-User-ID")
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity := Identity{
			UserID: userID,
			Name:   r.Header.Get("X-Dev-User-Name"),
			Email:  r.Header.Get("X-Dev-User-Email"),
		}
		if identity.Name == "" {
			identity.Name = userID
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the session identity from the request context.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	return identity, ok
}
