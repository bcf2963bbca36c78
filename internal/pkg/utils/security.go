package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// TokenClaims is the session token payload: user identity plus role,
// with a jti so individual tokens can be revoked at logout.
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateJWT(userID uint, email, role, secret string, expTimeInHour int) (string, error) {
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expTimeInHour) * time.Hour)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

func ParseJWT(tokenString, secret string) (*TokenClaims, error) {
	claims := new(TokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return claims, nil
}

// ComputeHMACSignature implements the gateway's documented signing recipe:
// hex-encoded HMAC-SHA256 of message under secret.
func ComputeHMACSignature(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMACSignature compares in constant time.
func VerifyHMACSignature(message, secret, signature string) bool {
	expected := ComputeHMACSignature(message, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
