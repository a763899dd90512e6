package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims defines the structure of the signed token payload; the
// user id travels as the subject claim
type sessionClaims struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  string   `json:"role"`
	Types []string `json:"types,omitempty"`
	jwt.RegisteredClaims
}

// SignedCodec carries the same session fields as Codec inside an HS256
// JWT so that tampered cookies fail validation. Configure it by passing
// a signing token to the server; left unconfigured the server keeps the
// original unsigned encoding.
type SignedCodec struct {
	secret string
}

func NewSignedCodec(secret string) SignedCodec {
	return SignedCodec{secret: secret}
}

func (c SignedCodec) Encode(session Session) (string, error) {
	claims := sessionClaims{
		Email: session.Email,
		Name:  session.Name,
		Role:  string(session.Role),
		Types: session.Types,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserId,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.IssuedAt.Add(SessionValidity)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.secret))
}

func (c SignedCodec) Decode(tokenStr string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("failed to validate token signing method")
		}
		return []byte(c.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("failed to validate token expiry: %w", ErrorTokenExpired)
		}
		return nil, fmt.Errorf("failed to parse token claims: %w", ErrorMalformedToken)
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("failed to validate token claims structure: %w", ErrorMalformedToken)
	}
	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	return sessionFromFields(claims.Subject, claims.Email, claims.Name, claims.Role, claims.Types, issuedAt)
}
