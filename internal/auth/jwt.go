package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// Claims carried by an access token. Role gates the admin routes;
// userID scopes every patient, session and creation lookup.
type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func signingSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// GenerateToken issues an HS256 access token for a nutritionist or
// admin account.
func GenerateToken(userID, email, role string) (string, error) {
	if userID == "" {
		return "", errors.New("cannot issue a token without a user id")
	}

	secret, err := signingSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken verifies a token and returns its identity claims.
func ValidateToken(tokenString string) (string, string, string, error) {
	secret, err := signingSecret()
	if err != nil {
		return "", "", "", err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		},
	)
	if err != nil || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}

	return claims.UserID, claims.Email, claims.Role, nil
}
