package jwthandling

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Information a token encodes
type PatientUserClaims struct {
	SessionID string            `json:"session_id,omitempty"`
	Payload   map[string]string `json:"payload,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the numeric user id carried in the subject, or 0 when the
// token belongs to a visitor who has not registered yet.
func (c *PatientUserClaims) UserID() int64 {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func GenerateNewPatientUserToken(
	expiresIn time.Duration,
	userID int64,
	sessionID string,
	payload map[string]string,
	secretKey string,
) (tokenString string, err error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	claims := PatientUserClaims{
		sessionID,
		payload,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidatePatientUserToken(tokenString string, secretKey string) (claims *PatientUserClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &PatientUserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*PatientUserClaims)
	valid = valid && token.Valid
	return
}
