package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/keycloak"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.validate())
}

func TestValidate_DefaultsDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.Driver = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
}

func TestValidate_DefaultsHTTPAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestValidate_UnsupportedDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.Driver = "oracle"

	err := cfg.validate()

	require.ErrorIs(t, err, ErrUnsupportedDBDriver)
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()

	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
