package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is the fixed lifetime of an issued token. There is no refresh
// mechanism; clients log in again after expiry.
const TokenTTL = 24 * time.Hour

// Claims is the token payload: a nested user object carrying the user's id,
// plus the registered expiry claim.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

type UserClaim struct {
	ID string `json:"id"`
}

// Mint signs a token for the given user id with the server secret.
func Mint(secret []byte, userID string) (string, error) {
	claims := Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify parses and validates a token string, returning its claims.
func Verify(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
