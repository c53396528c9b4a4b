package models

import (
	"errors"
	"time"

	sj "github.com/brianvoe/sjwt"
)

const adminTokenTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Admin struct {
	Username string `json:"username" bson:"username"`
	Password string `json:"password,omitempty" bson:"password"`
}

func (a *Admin) GenToken(secret []byte) string {
	claims, _ := sj.ToClaims(struct {
		Username string `json:"username"`
	}{a.Username})
	claims.SetExpiresAt(time.Now().Add(adminTokenTTL))

	return claims.Generate(secret)
}

func (a *Admin) ParseToken(token string, secret []byte) error {
	if !sj.Verify(token, secret) {
		return ErrInvalidToken
	}

	claims, err := sj.Parse(token)
	if err != nil {
		return ErrInvalidToken
	}
	if err := claims.Validate(); err != nil {
		return err
	}

	if err := claims.ToStruct(a); err != nil {
		return err
	}
	if a.Username == "" {
		return ErrInvalidToken
	}

	return nil
}
