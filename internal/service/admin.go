package service

import (
	"crypto/subtle"
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/dto"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Fallback when ADMIN_PASSWORD is unset. Dev convenience only.
const defaultAdminPassword = "changeme"

type AdminService interface {
	Login(password string) (*dto.LoginResponse, error)
	VerifyToken(token string) error
}

type adminServiceImpl struct {
	password  string
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAdminService(password, jwtSecret string, tokenTTL time.Duration) AdminService {
	if password == "" {
		password = defaultAdminPassword
	}

	return &adminServiceImpl{
		password:  password,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login compares the submitted password against the configured secret and
// on match issues a signed, time-bound token required on admin routes.
func (s *adminServiceImpl) Login(password string) (*dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return nil, apperr.ErrUnauthorized
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign admin token: %w", err)
	}

	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *adminServiceImpl) VerifyToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return apperr.ErrUnauthorized
	}

	return nil
}
