// Package auth implements the token issuer/verifier and password hashing.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/jobpulse/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims binds a principal kind and identifier into a signed token. The
// principal ID travels in the registered subject claim.
type Claims struct {
	Kind  domain.PrincipalKind `json:"kind"`
	Email string               `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. Verification is a
// pure function of the token and the secret; it performs no store access.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
	parser *jwt.Parser
}

func NewTokenService(secret string, ttl time.Duration, clock clockwork.Clock) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(clock.Now),
			jwt.WithExpirationRequired(),
		),
	}
}

// Issue creates a signed token for the given identity, valid for the
// configured TTL from now.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Kind:  identity.Kind,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning the identity it
// asserts. It fails on bad signatures, malformed tokens, expiry, unexpected
// signing methods, and subjects that are not well-formed object IDs.
func (s *TokenService) Verify(tokenString string) (domain.Identity, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid token: %w", err)
	}

	if claims.Kind == "" {
		return domain.Identity{}, fmt.Errorf("invalid token: missing principal kind")
	}

	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid token subject: %w", err)
	}

	return domain.Identity{Kind: claims.Kind, ID: id, Email: claims.Email}, nil
}
