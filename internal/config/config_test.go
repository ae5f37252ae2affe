package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name: "Success with minimal required config",
			envVars: map[string]string{
				"ADMIN_PASSWORD": "secret123",
			},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"SERVER_HOST":       "localhost",
				"SERVER_PORT":       "9090",
				"DATA_DIR":          "/tmp/store-data",
				"LOG_LEVEL":         "debug",
				"LOG_FORMAT":        "console",
				"ADMIN_USERNAME":    "root",
				"ADMIN_PASSWORD":    "secret123",
				"SESSION_TTL_HOURS": "8",
				"CATALOG_SOURCE":    "catalog/products.csv",
				"S3_ENABLED":        "true",
				"S3_BUCKET":         "catalog-bucket",
				"S3_REGION":         "eu-west-1",
			},
			expectError: false,
		},
		{
			name: "Error - missing admin password",
			envVars: map[string]string{
				"ADMIN_PASSWORD": "",
			},
			expectError: true,
			errorMsg:    "admin password is required",
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"SERVER_PORT":    "99999",
				"ADMIN_PASSWORD": "secret123",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL":      "verbose",
				"ADMIN_PASSWORD": "secret123",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT":     "xml",
				"ADMIN_PASSWORD": "secret123",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
		{
			name: "Error - S3 enabled without bucket",
			envVars: map[string]string{
				"ADMIN_PASSWORD": "secret123",
				"S3_ENABLED":     "true",
				"CATALOG_SOURCE": "catalog/products.csv",
			},
			expectError: true,
			errorMsg:    "S3 bucket is required",
		},
		{
			name: "Error - S3 enabled without source key",
			envVars: map[string]string{
				"ADMIN_PASSWORD": "secret123",
				"S3_ENABLED":     "true",
				"S3_BUCKET":      "catalog-bucket",
			},
			expectError: true,
			errorMsg:    "catalogue source key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}

			// Clean up
			os.Clearenv()
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_PASSWORD", "secret123")
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, 24, cfg.Auth.SessionTTLHours)
	assert.False(t, cfg.S3.Enabled)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Host: "localhost", Port: 8080},
			Storage: StorageConfig{DataDir: "data"},
			Logger:  LoggerConfig{Level: "info", Format: "json"},
			Auth:    AuthConfig{Username: "admin", Password: "secret123", SessionTTLHours: 24},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:        "Valid configuration",
			mutate:      func(*Config) {},
			expectError: false,
		},
		{
			name:        "Invalid - server port too high",
			mutate:      func(c *Config) { c.Server.Port = 99999 },
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name:        "Invalid - empty data dir",
			mutate:      func(c *Config) { c.Storage.DataDir = "" },
			expectError: true,
			errorMsg:    "data directory is required",
		},
		{
			name:        "Invalid - empty admin username",
			mutate:      func(c *Config) { c.Auth.Username = "" },
			expectError: true,
			errorMsg:    "admin username is required",
		},
		{
			name:        "Invalid - zero session TTL",
			mutate:      func(c *Config) { c.Auth.SessionTTLHours = 0 },
			expectError: true,
			errorMsg:    "session TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 9090}
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
}
