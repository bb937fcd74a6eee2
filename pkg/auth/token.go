package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type TokenServiceInterface interface {
	GenerateSessionToken(sessionID string, expirationTime time.Time) (string, error)
	ValidateSessionToken(tokenString string) (string, error)
}

// The cookie only carries a session id; signing it makes the id
// tamper-proof, the server-side session in redis holds the actual state.
var secretKey = []byte("chave-secreta-fiado-2025")

type Claims struct {
	SessionID string `json:"session_id"`
	jwt.StandardClaims
}

type TokenService struct{}

func (s *TokenService) GenerateSessionToken(sessionID string, expirationTime time.Time) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "fiado",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *TokenService) ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SessionID == "" || claims.Issuer != "fiado" {
		return "", errors.New("invalid token claims")
	}

	return claims.SessionID, nil
}
