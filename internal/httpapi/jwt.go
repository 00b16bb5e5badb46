package httpapi

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saideepoki/counselling-app/internal/model"
)

const sessionTokenExpiry = 24 * time.Hour

type sessionClaims struct {
	AccountID string
	Email     string
	Role      model.Role
}

type tokenCodec struct {
	key []byte
}

func newTokenCodec(secret string) *tokenCodec {
	if secret != "" {
		return &tokenCodec{key: []byte(secret)}
	}
	// No configured secret: generate a random key. Sessions will not survive
	// a restart, which is fine for dev.
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate session token key: " + err.Error())
	}
	return &tokenCodec{key: b}
}

func (c *tokenCodec) issue(p model.AccountProfile) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   p.AccountID,
		"email": p.Email,
		"role":  string(p.Role),
		"exp":   now.Add(sessionTokenExpiry).Unix(),
		"iat":   now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.key)
}

func (c *tokenCodec) parse(tokenStr string) (sessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.key, nil
	})
	if err != nil {
		return sessionClaims{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return sessionClaims{}, jwt.ErrSignatureInvalid
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	role := model.Role(roleStr)
	if sub == "" || !role.Valid() {
		return sessionClaims{}, fmt.Errorf("malformed session claims")
	}
	return sessionClaims{AccountID: sub, Email: email, Role: role}, nil
}
