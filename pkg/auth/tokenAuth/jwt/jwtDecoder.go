package jwtToken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/remirami/RecipeBank/pkg/auth/tokenAuth"
)

// Decoder reads JWT claims without signature verification. The server owns
// the signing key; the client only needs the payload to check expiry.
type Decoder struct {
	parser *jwt.Parser
}

// NewDecoder creates a pointer to a Decoder
func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

func (d *Decoder) Decode(token string) (*tokenAuth.Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, mapClaims); err != nil {
		return nil, tokenAuth.ErrInvalidToken
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, tokenAuth.ErrInvalidToken
	}

	claims := &tokenAuth.Claims{
		ExpiredAt: expiresAt.Time,
	}
	if issuedAt, err := mapClaims.GetIssuedAt(); err == nil && issuedAt != nil {
		claims.IssuedAt = issuedAt.Time
	}
	if subject, err := mapClaims.GetSubject(); err == nil {
		claims.UserID = subject
	}
	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}

	if claims.ExpiredAt.Before(time.Now()) {
		return nil, tokenAuth.ErrExpiredToken
	}
	return claims, nil
}
