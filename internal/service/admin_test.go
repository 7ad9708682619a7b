package service_test

import (
	"testing"
	"time"

	"equistore-backend/internal/apperr"
	"equistore-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassword = "s3cret-stable"
	testSecret   = "unit-test-jwt-secret"
)

func newAdminService() service.AdminService {
	return service.NewAdminService(testPassword, testSecret, time.Hour)
}

func TestAdminLogin(t *testing.T) {
	svc := newAdminService()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "exact match", password: testPassword},
		{name: "wrong password", password: "nope", wantErr: apperr.ErrUnauthorized},
		{name: "partial match", password: "s3cret", wantErr: apperr.ErrUnauthorized},
		{name: "case differs", password: "S3CRET-STABLE", wantErr: apperr.ErrUnauthorized},
		{name: "empty", password: "", wantErr: apperr.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.NotEmpty(t, resp.Token)
			assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)
		})
	}
}

func TestAdminTokenIsVerifiableAndTimeBound(t *testing.T) {
	svc := newAdminService()

	resp, err := svc.Login(testPassword)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyToken(t *testing.T) {
	svc := newAdminService()

	resp, err := svc.Login(testPassword)
	require.NoError(t, err)

	assert.NoError(t, svc.VerifyToken(resp.Token))
	assert.ErrorIs(t, svc.VerifyToken("garbage"), apperr.ErrUnauthorized)

	// token signed with another secret is rejected
	other := service.NewAdminService(testPassword, "another-secret", time.Hour)
	otherResp, err := other.Login(testPassword)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.VerifyToken(otherResp.Token), apperr.ErrUnauthorized)
}

func TestVerifyTokenExpired(t *testing.T) {
	expired := service.NewAdminService(testPassword, testSecret, -time.Minute)

	resp, err := expired.Login(testPassword)
	require.NoError(t, err)

	verifier := newAdminService()
	assert.ErrorIs(t, verifier.VerifyToken(resp.Token), apperr.ErrUnauthorized)
}

func TestDefaultPasswordFallback(t *testing.T) {
	svc := service.NewAdminService("", testSecret, time.Hour)

	_, err := svc.Login("changeme")
	assert.NoError(t, err)

	_, err = svc.Login("")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
