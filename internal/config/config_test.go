package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: development\n"))
	require.NoError(t, err)

	assert.Equal(t, 2333, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "blockpress", cfg.Database.Name)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoadOverridesAndNormalize(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
port: 8080
env: " Production "
jwt_secret: "  s3cret  "
allowed_origins:
  - " example.com "
  - ""
database:
  name: contentdb
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "contentdb", cfg.Database.Name)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, "prot: 8080\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	_, err := Load(writeConfig(t, "port: 70000\n"))
	assert.Error(t, err)
}

func TestDSNValue(t *testing.T) {
	c := DatabaseConfig{
		Host: "db.internal", Port: 3307,
		User: "app", Password: "pw", Name: "contentdb",
		Charset: "utf8mb4", ParseTime: true, Loc: "UTC",
	}
	assert.Equal(t,
		"app:pw@tcp(db.internal:3307)/contentdb?charset=utf8mb4&loc=UTC&parseTime=true",
		c.DSNValue())

	explicit := DatabaseConfig{DSN: "root:x@tcp(localhost:3306)/other"}
	assert.Equal(t, "root:x@tcp(localhost:3306)/other", explicit.DSNValue())
}

func TestRedisURLValue(t *testing.T) {
	assert.Equal(t, "redis://localhost:6379/0", RedisConfig{}.URLValue())
	assert.Equal(t, "redis://cache:6380/2", RedisConfig{Host: "cache", Port: 6380, DB: 2}.URLValue())
	assert.Equal(t, "rediss://:pw@cache:6379/0", RedisConfig{Host: "cache", Password: "pw", TLS: true}.URLValue())
	assert.Equal(t, "redis://host:6379", RedisConfig{URL: "host:6379"}.URLValue())
	assert.Equal(t, "redis://u:p@host:6379/1", RedisConfig{URL: "redis://u:p@host:6379/1"}.URLValue())
}
