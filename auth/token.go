package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtKey signs session tokens. Binaries override it at startup with the
// configured secret; the default only exists so tests need no setup.
var jwtKey = []byte("teamforge-dev-only-signing-key")

// SetSigningKey replaces the token signing secret. Call once during
// startup, before any token is issued.
func SetSigningKey(secret string) {
	jwtKey = []byte(secret)
}

// CustomClaims is the data carried inside a session token.
type CustomClaims struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session JWT for a user.
func GenerateToken(userID, username string, roles []string,
	tokenDuration time.Duration) (string, error) {
	expirationTime := time.Now().Add(tokenDuration)

	claims := &CustomClaims{
		UserID:   userID,
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "teamforge",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken parses a token string and checks its signature and expiry.
func ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
