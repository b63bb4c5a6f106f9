package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

const TokenTTL = time.Hour * 24

func CreateJWTToken(userID string, isAdmin bool, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["userId"] = userID
	claims["isAdmin"] = isAdmin
	claims["exp"] = time.Now().Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// ExtractTokenUser reads the subject claims written by CreateJWTToken.
func ExtractTokenUser(token *jwt.Token) (userID string, isAdmin bool, ok bool) {
	if token == nil || !token.Valid {
		return "", false, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false, false
	}

	userID, ok = claims["userId"].(string)
	if !ok || userID == "" {
		return "", false, false
	}

	isAdmin, _ = claims["isAdmin"].(bool)
	return userID, isAdmin, true
}
