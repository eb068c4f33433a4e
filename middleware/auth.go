package middleware

import (
	"net/http"
	"strings"

	"quill/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// AuthRequired resolves the bearer token into an identity and stores
// user_id and user_email in the request context. Websocket upgrades
// carry the token in the query string instead of a header.
func AuthRequired(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if websocket.IsWebSocketUpgrade(c.Request) {
			token = c.Query("token")
		} else {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = authHeader[7:]
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}

		email, userID, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Next()
	}
}
