package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken("0190c5e6-7b8c-7b4a-8a2b-6b8b8b8b8b8b", employee.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "0190c5e6-7b8c-7b4a-8a2b-6b8b8b8b8b8b", claims.EmployeeID)
	assert.Equal(t, employee.RoleManager, claims.Role)
	assert.Equal(t, expiresAt, claims.ExpiresAt.Unix())
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, "1h")
	token, _, err := issuer.GenerateAccessToken("emp-1", employee.RoleEmployee)
	require.NoError(t, err)

	_, err = VerifyAccessToken(NewTokenAuth("another-secret"), token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, "1h").(*JWTService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken("emp-1", employee.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_RejectsNonAccessToken(t *testing.T) {
	ja := NewTokenAuth(testSecret)
	_, token, err := ja.Encode(map[string]interface{}{
		"employee_id": "emp-1",
		"role":        "manager",
		"type":        "refresh",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, err = VerifyAccessToken(ja, token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestJWTService_Revoke(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	token, _, err := svc.GenerateAccessToken("emp-1", employee.RoleEmployee)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestClaimsFromContext(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	token, _, err := svc.GenerateAccessToken("emp-7", employee.RoleSupervisor)
	require.NoError(t, err)

	var got Claims
	var gotErr error
	h := jwtauth.Verifier(svc.JWTAuth())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NoError(t, gotErr)
	assert.Equal(t, "emp-7", got.EmployeeID)
	assert.Equal(t, employee.RoleSupervisor, got.Role)

	_, err = ClaimsFromContext(context.Background())
	assert.Error(t, err)
}
