package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "test-issuer", "vm-01")

	tokenStr, expiresAt, err := svc.Generate("technician")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "technician", claims.Operator)
	assert.Equal(t, "vm-01", claims.MachineID)
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, -1*time.Hour, "test-issuer", "vm-01")

	tokenStr, _, err := svc.Generate("technician")
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err, "expired token should fail validation")
}

func TestJWTTokenService_InvalidSignature(t *testing.T) {
	svc1 := NewJWTTokenService("secret-1", time.Hour, "issuer", "vm-01")
	svc2 := NewJWTTokenService("secret-2", time.Hour, "issuer", "vm-01")

	tokenStr, _, err := svc1.Generate("technician")
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err, "token signed with different secret should fail")
}

func TestJWTTokenService_OtherMachine(t *testing.T) {
	svc1 := NewJWTTokenService(testJWTSecret, time.Hour, "issuer", "vm-01")
	svc2 := NewJWTTokenService(testJWTSecret, time.Hour, "issuer", "vm-02")

	tokenStr, _, err := svc1.Generate("technician")
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTTokenService_OtherIssuer(t *testing.T) {
	svc1 := NewJWTTokenService(testJWTSecret, time.Hour, "issuer-a", "vm-01")
	svc2 := NewJWTTokenService(testJWTSecret, time.Hour, "issuer-b", "vm-01")

	tokenStr, _, err := svc1.Generate("technician")
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTTokenService_InvalidTokenString(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "issuer", "vm-01")

	_, err := svc.Validate("not.a.valid.jwt")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}
