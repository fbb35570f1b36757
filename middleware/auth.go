package middleware

import (
	"github.com/gin-gonic/gin"

	"shopper/apperr"
	"shopper/auth"
)

// UserIDKey is the gin context key the guard stores the authenticated user
// id under.
const UserIDKey = "userId"

// TokenHeader is the fixed header clients send their token in.
const TokenHeader = "auth-token"

// AuthGuard verifies the auth-token header and puts the decoded user id on
// the context. Requests without a verifiable token are rejected with 401.
func AuthGuard(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			apperr.Abort(c, apperr.ErrUnauthenticated)
			return
		}

		claims, err := auth.Verify(secret, tokenString)
		if err != nil {
			apperr.Abort(c, apperr.Wrap(apperr.ErrInvalidToken, err))
			return
		}

		c.Set(UserIDKey, claims.User.ID)
		c.Next()
	}
}
