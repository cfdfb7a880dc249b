package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is what a verified session token tells us about the caller.
type Identity struct {
	UserID string
	Email  string
}

// Verifier checks session tokens issued by Clerk (RS256 via JWKS) or, for
// local development, tokens signed with AUTH_SECRET.
type Verifier struct {
	keyfunc jwt.Keyfunc
	jwks    keyfunc.Keyfunc
	issuer  string
	methods []string
}

func NewClerkVerifier(ctx context.Context, issuer string) (*Verifier, error) {
	if issuer == "" {
		return nil, fmt.Errorf("clerk issuer URL is required")
	}

	jwksURL := issuer + "/.well-known/jwks.json"
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("fetch JWKS from %s: %w", jwksURL, err)
	}

	return &Verifier{
		jwks:    jwks,
		issuer:  issuer,
		methods: []string{"RS256"},
	}, nil
}

func NewHMACVerifier(secret string) *Verifier {
	key := []byte(secret)
	return &Verifier{
		keyfunc: func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return key, nil
		},
		methods: []string{jwt.SigningMethodHS256.Alg()},
	}
}

func (v *Verifier) ValidateToken(ctx context.Context, tokenString string) (*Identity, error) {
	kf := v.keyfunc
	if v.jwks != nil {
		kf = v.jwks.KeyfuncCtx(ctx)
	}

	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods(v.methods),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(tokenString, kf, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: sub, Email: email}, nil
}

// GenerateToken mints an HS256 session token. Only used for local
// development and tests; production sessions come from Clerk.
func GenerateToken(secret, subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
