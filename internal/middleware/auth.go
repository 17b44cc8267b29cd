package middleware

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"budgettracker/internal/models"
)

const tokenIssuer = "budget-tracker"

// SessionClaims are the claims carried by the session cookie. The cookie
// only names a server-side session; the session row stays authoritative.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignSessionToken produces the signed cookie value for a session.
func SignSessionToken(secret []byte, session *models.Session) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken verifies a cookie value and returns the session id it names.
func ParseSessionToken(secret []byte, tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	if claims.SessionID == "" {
		return "", fmt.Errorf("session token has no session id")
	}
	return claims.SessionID, nil
}
