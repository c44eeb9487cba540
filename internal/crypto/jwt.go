package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures are reported as exactly one of these kinds.
// The HTTP boundary collapses them all to 401; the distinction exists for
// logging and for callers that branch with errors.Is.
var (
	ErrTokenEmpty            = errors.New("token is empty")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenUnsupported      = errors.New("token uses an unsupported signing method")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenInvalid          = errors.New("token is invalid")
)

// Claims represents the JWT claims carried by an identity token.
// Only the registered sub/iat/exp claims are used.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken creates an HS512-signed JWT whose subject is the given user
// ID, valid for the given duration from now.
func GenerateToken(userID string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a token string and returns its subject.
// Expiry is strict: a token whose exp equals the current instant is expired.
// Base64 decoding is strict too, so altering a trailing signature character
// cannot slip through unused padding bits.
func ValidateToken(tokenString string, secret []byte) (string, error) {
	if tokenString == "" {
		return "", ErrTokenEmpty
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS512 {
			return nil, ErrTokenUnsupported
		}
		return secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithStrictDecoding())
	if err != nil {
		return "", classifyTokenError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}

// classifyTokenError maps jwt library errors onto this package's sentinel
// kinds. The library joins multiple sentinels into one error, so order
// matters: expiry wins over the generic claim-validation wrapper.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, ErrTokenUnsupported):
		return ErrTokenUnsupported
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	default:
		return ErrTokenInvalid
	}
}
