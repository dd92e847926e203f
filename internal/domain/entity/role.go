// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"storefront/internal/errors"
)

// Role represents the authorization level of a user. Every user carries
// exactly one role.
type Role string

const (
	// RoleUser indicates a regular customer account.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "ADMIN"
)

// rolePrefix is the canonical prefix carried by the role claim on issued tokens.
const rolePrefix = "ROLE_"

// ErrUnknownRole is returned when a role claim cannot be mapped to a known role.
var ErrUnknownRole = errors.New("unknown role")

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Claim returns the prefixed canonical form of the role, e.g. "ROLE_USER",
// as carried in issued tokens.
func (r Role) Claim() string {
	return PrefixRole(string(r))
}

// DecodeRole maps a persisted role value to a Role. The decode is lenient on
// purpose: values are matched case-insensitively and anything unrecognized,
// including blank, falls back to RoleUser rather than failing. Order and
// payment statuses decode strictly; the asymmetry is intentional.
func DecodeRole(value string) Role {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleUser
	}
}

// PrefixRole normalizes a role value to its prefixed canonical claim form.
// The normalization is idempotent: already-prefixed input is left as is
// (upper-cased), un-prefixed input gets the prefix added, and blank input
// defaults to "ROLE_USER".
func PrefixRole(value string) string {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return rolePrefix + string(RoleUser)
	}
	if strings.HasPrefix(normalized, rolePrefix) {
		return normalized
	}

	return rolePrefix + normalized
}

// RoleFromClaim maps a token role claim back to a Role. Unlike DecodeRole it
// is strict: a claim that does not name a known role returns ErrUnknownRole,
// which the boundary surfaces as a distinct authorization failure because it
// indicates corrupted persisted data rather than a bad credential.
func RoleFromClaim(claim string) (Role, error) {
	trimmed := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(claim)), rolePrefix)
	role := Role(trimmed)
	if !role.IsValid() {
		return "", errors.Wrapf(ErrUnknownRole, "role claim %q", claim)
	}

	return role, nil
}
