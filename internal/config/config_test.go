package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "dist", cfg.Server.StaticDir)
	assert.Equal(t, "classform", cfg.Database.DBName)
	assert.Equal(t, DefaultAdminPassword, cfg.Admin.Password)
	assert.Equal(t, time.Hour, cfg.AdminTokenExpiration())
	assert.Equal(t, "classform.app", cfg.Admin.TokenIssuer)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "8080"
  mode: release
database:
  dbname: classform_test
admin:
  password: s3cret
  token_expiration: 30m
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "classform_test", cfg.Database.DBName)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, 30*time.Minute, cfg.AdminTokenExpiration())
}

func TestLoadConfig_EnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "8080"
admin:
  password: from-file
`), 0o644))

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("DATABASE_URL", "postgres://app:pw@db.internal:5432/classform")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Admin.Password)
	assert.Equal(t, "postgres://app:pw@db.internal:5432/classform", cfg.GetPostgresConnectionString())
}

func TestLoadConfig_RejectsBadTokenExpiration(t *testing.T) {
	t.Setenv("ADMIN_TOKEN_EXPIRATION", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expiration")
}

func TestGetPostgresConnectionString_BuiltFromParts(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "classform"

	assert.Equal(t,
		"postgres://app:pw@localhost:5432/classform?sslmode=disable",
		cfg.GetPostgresConnectionString(),
	)
}

func TestAdminTokenSecret_FallsBackToPassword(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	assert.Equal(t, DefaultAdminPassword, cfg.AdminTokenSecret())

	cfg.Admin.TokenSecret = "independent-signing-key"
	assert.Equal(t, "independent-signing-key", cfg.AdminTokenSecret())
}
