package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/silentraja/Medskls/pkg/jwt-handling"
)

const (
	HeaderAuthorization = "Authorization"
)

// GetAndValidatePatientUserJWT extracts the JWT from the request and
// validates it. Requests without a valid token are rejected.
func GetAndValidatePatientUserJWT(tokenSignKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		parsedToken, ok, err := jwthandling.ValidatePatientUserToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed", slog.String("error", errMsg(err)))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}
		c.Set("token", token)
		c.Set("validatedToken", parsedToken)
	}
}

// GetPatientUserJWTIfPresent validates the JWT when one is attached but lets
// anonymous requests through without setting a validated token. The intake
// submission endpoint uses this to tell registered patients from visitors who
// still need to create an account.
func GetPatientUserJWTIfPresent(tokenSignKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			c.Next()
			return
		}

		parsedToken, ok, err := jwthandling.ValidatePatientUserToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed", slog.String("error", errMsg(err)))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}
		c.Set("token", token)
		c.Set("validatedToken", parsedToken)
	}
}

func extractToken(c *gin.Context) (string, error) {
	req := c.Request

	var token string
	tokens, ok := req.Header[HeaderAuthorization]
	if ok && len(tokens) > 0 {
		token = tokens[0]
		token = strings.TrimPrefix(token, "Bearer ")
		if len(token) == 0 {
			return token, errors.New("no token found in Authorization header")
		}
	} else {
		return token, errors.New("no Authorization header found")
	}
	return token, nil
}

func errMsg(err error) string {
	if err == nil {
		return "token invalid"
	}
	return err.Error()
}
