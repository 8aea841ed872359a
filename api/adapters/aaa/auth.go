package aaa

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	adminRole = "superuser"
	issuer    = "amharic-api"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// Authentication, Authorization, Accounting
type AAA struct {
	users    map[string]string
	secret   []byte
	tokenTTL time.Duration
	log      *slog.Logger
}

func New(user, password, secret string, tokenTTL time.Duration, log *slog.Logger) (AAA, error) {
	if user == "" || password == "" {
		return AAA{}, errors.New("admin user and password must be set")
	}
	if secret == "" {
		return AAA{}, errors.New("token secret must be set")
	}
	if tokenTTL <= 0 {
		return AAA{}, fmt.Errorf("bad token ttl %v", tokenTTL)
	}
	return AAA{
		users:    map[string]string{user: password},
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		log:      log,
	}, nil
}

func (a AAA) Login(name, password string) (string, error) {
	expected, ok := a.users[name]
	if !ok || subtle.ConstantTimeCompare([]byte(expected), []byte(password)) != 1 {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   adminRole,
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		a.log.Error("cannot sign token", "error", err)
		return "", err
	}
	return token, nil
}

func (a AAA) Verify(tokenString string) error {
	if tokenString == "" {
		return errors.New("empty token")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			return a.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if claims.Subject != adminRole {
		return ErrForbidden
	}
	return nil
}
