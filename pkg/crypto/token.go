package crypto

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/binderhq/binder/core"
)

const MinSecretLength = 32

// Ensure TokenIssuer implements TokenHandler
var _ core.TokenHandler = (*TokenIssuer)(nil)

// TokenIssuer mints and verifies HS256 bearer tokens carrying an account
// id in the subject claim. Tokens are stateless: verification only checks
// the signature (and expiry when a TTL is configured), never storage.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer from the server-held signing secret.
// A zero ttl issues tokens without an expiry claim.
func NewTokenIssuer(secret []byte, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, core.ErrSecretRequired
	}
	if len(secret) < MinSecretLength {
		return nil, core.ErrSecretTooShort
	}
	return &TokenIssuer{secret: secret, ttl: ttl}, nil
}

func (t *TokenIssuer) Issue(accountID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  strconv.FormatInt(accountID, 10),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(t.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, core.ErrTokenSignature
		}
		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, core.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, core.ErrTokenSignature
		default:
			return 0, core.ErrTokenMalformed
		}
	}
	if !token.Valid {
		return 0, core.ErrTokenSignature
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, core.ErrTokenMalformed
	}

	return accountID, nil
}
