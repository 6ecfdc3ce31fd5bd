package tokenAuth

import (
	"errors"
	"time"
)

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("token is invalid")
)

// Claims is the payload the server embeds in the access token. The client
// never verifies the signature; it only reads the claims to decide whether
// the credential is still usable.
type Claims struct {
	UserID    string
	Username  string
	IssuedAt  time.Time
	ExpiredAt time.Time
}

// Decoder extracts claims from a raw token string without verifying it.
type Decoder interface {
	Decode(token string) (*Claims, error)
}
