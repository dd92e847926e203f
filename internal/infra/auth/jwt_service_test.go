package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test_secret_key_very_long_for_testing"
	cfg.SecretKey.TTL = time.Hour

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	token, err := jwtService.Generate("alice@example.com", entity.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, "ROLE_ADMIN", claims.Role)
}

func TestJWTService_RoleClaimIsPrefixed(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	token, err := jwtService.Generate("bob@example.com", entity.RoleUser)
	assert.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "ROLE_USER", claims.Role)

	role, err := entity.RoleFromClaim(claims.Role)
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey.TTL = -time.Minute

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.Generate("carol@example.com", entity.RoleUser)
	assert.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SecretKey.JWT = "another_secret_key_very_long_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := jwtService.Generate("dave@example.com", entity.RoleUser)
	assert.NoError(t, err)

	claims, err := otherService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey.JWT = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
