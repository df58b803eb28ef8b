package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel/attribute"
)

type contextKey string

const identityContextKey contextKey = "httpserver.identity"

// Identity is the authentication/tenancy context owned by this layer and
// consumed by the services. Anonymous requests carry an empty UserID.
type Identity struct {
	UserID   string
	TenantID string
	Email    string
	Role     string
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

func IdentityFromContext(ctx context.Context) Identity {
	if identity, ok := ctx.Value(identityContextKey).(Identity); ok {
		return identity
	}
	return Identity{}
}

func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

type Authenticator struct {
	secret []byte
}

type identityClaims struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware resolves a bearer token into an Identity. Requests without a
// token pass through anonymously; controllers decide whether anonymous access
// is acceptable for their routes.
func (a *Authenticator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				ReplyWithError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			identity, err := a.Verify(raw)
			if err != nil {
				ReplyWithError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			span := GetSpanFromContext(r)
			span.SetAttributes(
				attribute.String("user.id", identity.UserID),
				attribute.String("tenant.id", identity.TenantID),
			)

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// Issue signs a token carrying the identity, valid for the given duration.
func (a *Authenticator) Issue(identity Identity, validFor time.Duration) (string, error) {
	now := time.Now()
	claims := identityClaims{
		TenantID: identity.TenantID,
		Email:    identity.Email,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validFor)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) Verify(raw string) (Identity, error) {
	var claims identityClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		UserID:   claims.Subject,
		TenantID: claims.TenantID,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}
