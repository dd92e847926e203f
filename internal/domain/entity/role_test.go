package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRole_LenientFallback(t *testing.T) {
	tests := []struct {
		value string
		want  Role
	}{
		{"ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
		{"  Admin  ", RoleAdmin},
		{"USER", RoleUser},
		{"user", RoleUser},
		{"", RoleUser},
		{"SUPERVISOR", RoleUser},
		{"garbage", RoleUser},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeRole(tt.value), "value %q", tt.value)
	}
}

func TestPrefixRole_Idempotent(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"USER", "ROLE_USER"},
		{"admin", "ROLE_ADMIN"},
		{"ROLE_ADMIN", "ROLE_ADMIN"},
		{"role_user", "ROLE_USER"},
		{"", "ROLE_USER"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrefixRole(tt.value), "value %q", tt.value)
	}
}

func TestRoleFromClaim_Strict(t *testing.T) {
	role, err := RoleFromClaim("ROLE_ADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = RoleFromClaim("user")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	// Unlike DecodeRole, an unknown claim is an error, never a silent USER.
	_, err = RoleFromClaim("ROLE_SUPERVISOR")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = RoleFromClaim("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRole_Claim(t *testing.T) {
	assert.Equal(t, "ROLE_USER", RoleUser.Claim())
	assert.Equal(t, "ROLE_ADMIN", RoleAdmin.Claim())
}

func TestPrincipal_IsAdmin(t *testing.T) {
	assert.True(t, Principal{Email: "a@example.com", Role: RoleAdmin}.IsAdmin())
	assert.False(t, Principal{Email: "b@example.com", Role: RoleUser}.IsAdmin())
}
