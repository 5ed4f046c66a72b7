package services

import (
	"errors"
	"fmt"
	"time"

	"main/model"
	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "notes-api"

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, malformed token, expired token. Callers never learn which,
// so a forged token is indistinguishable from a stale one.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed bearer token for the user. Tokens are
// stateless: validity is fully determined by the signature and expiry.
func GenerateToken(user *model.User) (string, error) {
	return signToken(user, time.Now().Add(utils.JWTExpiration))
}

func signToken(user *model.User, expiresAt time.Time) (string, error) {
	claims := Claims{
		UserID: user.UserID,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// ParseToken verifies a bearer token and returns its claims. Expiry is
// enforced by the parser itself.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
