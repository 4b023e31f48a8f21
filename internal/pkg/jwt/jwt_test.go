package jwt

import (
	"strings"
	"testing"

	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

var testUser = user.AuthUser{
	ID:         "usr-001",
	Email:      "employee@sailshr.local",
	Role:       user.RoleEmployee,
	EmployeeID: "emp-001",
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	token, expiresIn, err := svc.GenerateAccessToken(testUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)
	assert.Len(t, strings.Split(token, "."), 3)

	decoded, err := svc.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "usr-001", decoded.Subject())

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "EMPLOYEE", role)

	email, ok := decoded.Get("email")
	require.True(t, ok)
	assert.Equal(t, "employee@sailshr.local", email)
}

func TestVerifyToken_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	token, _, err := svc.GenerateAccessToken(testUser)
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	flipped := byte('A')
	if token[len(token)-1] == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = svc.VerifyToken(tampered)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc, err := NewJWTService(testSecret, "-1s")
	require.NoError(t, err)

	token, _, err := svc.GenerateAccessToken(testUser)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Malformed(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.VerifyToken(input)
		assert.Error(t, err, "input %q should be rejected", input)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)
	verifier, err := NewJWTService("another-secret", "1h")
	require.NoError(t, err)

	token, _, err := issuer.GenerateAccessToken(testUser)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}
