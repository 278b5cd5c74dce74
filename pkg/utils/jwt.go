package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jiu45/JobPortal/config"
	apperrors "github.com/jiu45/JobPortal/pkg/errors"
)

// GenerateJWTToken issues an HS256 access token whose subject is the user id.
func GenerateJWTToken(userID uuid.UUID, cfg *config.Config) (string, error) {
	expiresIn := cfg.JWT.ExpiredIn
	if expiresIn <= 0 {
		expiresIn = 86400
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiresIn) * time.Second)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInternal, "failed to sign token", err)
	}
	return signed, nil
}

// ParseUserID validates a token and returns the user id it was issued for.
func ParseUserID(tokenString string, cfg *config.Config) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return userID, nil
}
