// Package identity wraps the external identity provider. The backend never
// issues credentials itself; it only verifies tokens the provider minted and
// maps their subject to a local user row.
package identity

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed, expired,
// bad signature, wrong issuer. Callers must not distinguish further — the
// access gate answers 401 either way.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the verified assertions extracted from a provider token.
type Claims struct {
	SubjectID string
	Email     string
	Name      string
}

// Verifier is the opaque verify(token) capability. Any OIDC-compatible
// provider client satisfies it; tests plug in stubs.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies provider-issued HS256 tokens against a shared secret
// and expected issuer. Constructed once at startup and passed by handle to
// whoever needs it — there is no lazily-initialized global.
type JWTVerifier struct {
	secret []byte
	issuer string
}

func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (*Claims, error) {
	parsed := &tokenClaims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	t, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !t.Valid || parsed.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		SubjectID: parsed.Subject,
		Email:     parsed.Email,
		Name:      parsed.Name,
	}, nil
}
