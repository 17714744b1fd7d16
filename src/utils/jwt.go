package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// VisitorClaims identify an anonymous quiz visitor.
type VisitorClaims struct {
	VisitorID string `json:"vid"`
	jwt.RegisteredClaims
}

func GenerateVisitorToken(secret []byte, visitorID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := VisitorClaims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseVisitorToken(secret []byte, tokenStr string) (*VisitorClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &VisitorClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || token == nil {
		return nil, fmt.Errorf("token parsing failed: %v", err)
	}

	claims, ok := token.Claims.(*VisitorClaims)
	if !ok || !token.Valid || claims.VisitorID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
