package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 15 * time.Minute

var (
	// ErrTokenMalformed is returned for tokens that cannot be decoded or lack required claims.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSignature is returned when the signature or signing method does not match.
	ErrTokenSignature = errors.New("token signature invalid")
	// ErrTokenExpired is returned once the current time reaches the token's expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the identity carried by an access token.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// tokenClaims nests the identity under "user" next to iat and exp.
type tokenClaims struct {
	User Claims `json:"user"`
	jwt.RegisteredClaims
}

// Issuer signs access tokens.
type Issuer interface {
	Issue(claims Claims) (string, error)
}

// Verifier checks access tokens and returns the identity they carry.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	Issuer
	Verifier
}

// hmacTokenService signs with HMAC-SHA256 using a shared secret.
type hmacTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

var _ TokenService = (*hmacTokenService)(nil)

// NewHMACTokenService creates an HS256 token service. A non-positive ttl falls back to DefaultTTL.
func NewHMACTokenService(secret string, ttl time.Duration) TokenService {
	return newHMACTokenService(secret, ttl, time.Now)
}

func newHMACTokenService(secret string, ttl time.Duration, now func() time.Time) *hmacTokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &hmacTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithStrictDecoding(),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
		),
	}
}

// Issue signs claims with an iat of now and an exp of now plus the TTL.
func (s *hmacTokenService) Issue(claims Claims) (string, error) {
	now := s.now()
	tc := tokenClaims{
		User: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of token and returns its claims.
func (s *hmacTokenService) Verify(token string) (Claims, error) {
	var tc tokenClaims
	parsed, err := s.parser.ParseWithClaims(token, &tc, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrTokenSignature
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if !parsed.Valid || tc.User.ID == "" {
		return Claims{}, ErrTokenMalformed
	}

	return tc.User, nil
}
