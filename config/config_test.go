package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  log:
    level: info
http:
  port: 8080
mongo:
  uri: mongodb://db:27017
secretKey:
  access: from-file
auth:
  bcryptCost: 4
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))

	return dir
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := writeTestConfig(t)
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 90*24*time.Hour, cfg.Maintenance.EventRetention)
	assert.Equal(t, 30*24*time.Hour, cfg.Maintenance.NotificationRetention)
	assert.Nil(t, cfg.Metrics)
}

func TestValidate(t *testing.T) {
	newValid := func() *Config {
		cfg := &Config{Mongo: &MongoConfig{URI: "mongodb://localhost"}}
		cfg.SecretKey.Access = "secret"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing mongo uri", mutate: func(cfg *Config) { cfg.Mongo.URI = "" }, wantErr: "mongo.uri"},
		{name: "missing secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = " " }, wantErr: "secretKey.access"},
		{
			name: "short secret in production",
			mutate: func(cfg *Config) {
				cfg.Env.Env = "production"
			},
			wantErr: "at least 32 bytes",
		},
		{
			name: "rate limit without redis",
			mutate: func(cfg *Config) {
				cfg.RateLimit = &RateLimitConfig{Enabled: true}
			},
			wantErr: "rateLimit.addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newValid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
