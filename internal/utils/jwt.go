package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
)

// Claims is the bearer token payload: the user id, the email as subject
// and the expiry as a UNIX timestamp.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed bearer tokens. The
// secret is process-wide configuration; there is no key rotation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret
// and token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue mints a signed token for the user identified by userID with the
// email as subject, expiring after the configured TTL.
func (ts *TokenService) Issue(email string, userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Decode verifies the signature before interpreting any claim, then the
// expiry. An expired but correctly signed token returns
// domain.ErrTokenExpired; everything else returns domain.ErrTokenMalformed.
func (ts *TokenService) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return ts.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}

	if !token.Valid {
		return nil, domain.ErrTokenMalformed
	}

	return claims, nil
}
