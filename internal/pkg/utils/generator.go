package utils

import (
	"adhd-intake-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionJWT(sessionID, secret string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.JWTClaimSessionID: sessionID,
		constvars.JWTClaimExpiry:    time.Now().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseSessionJWT verifies the token and returns its session_id claim.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	sessionID, ok := claims[constvars.JWTClaimSessionID].(string)
	if !ok || sessionID == "" {
		return "", errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	return sessionID, nil
}
