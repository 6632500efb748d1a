//go:build unit

package jwt

import (
	"testing"
	"time"

	"barangay-reservation/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	svc := NewService("secret", time.Hour)
	userID := uuid.New()

	expired, err := NewService("secret", -time.Minute).GenerateToken(userID, user.RoleResident)
	require.NoError(t, err)

	otherKey, err := NewService("other", time.Hour).GenerateToken(userID, user.RoleResident)
	require.NoError(t, err)

	unknownRole, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
		UserID: userID,
		Role:   user.Role("captain"),
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: ErrExpiredToken},
		{name: "wrong signing key", token: otherKey, wantErr: ErrInvalidToken},
		{name: "unknown role", token: unknownRole, wantErr: ErrInvalidToken},
		{name: "garbage", token: "not-a-token", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}
