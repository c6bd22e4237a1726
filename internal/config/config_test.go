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
				"API_KEY": "test-api-key",
			},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"SERVER_HOST":           "localhost",
				"SERVER_PORT":           "9090",
				"MONGO_URI":             "mongodb://mongo.example.com:27017",
				"MONGO_DB":              "testdb",
				"MONGO_CONNECT_TIMEOUT": "5",
				"LOG_LEVEL":             "debug",
				"LOG_FORMAT":            "console",
				"API_KEY":               "test-key-123",
				"NATS_URL":              "nats://localhost:4222",
			},
			expectError: false,
		},
		{
			name: "Error - missing API key",
			envVars: map[string]string{
				"API_KEY": "",
			},
			expectError: true,
			errorMsg:    "API key is required",
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"SERVER_PORT": "99999",
				"API_KEY":     "test-key",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "invalid",
				"API_KEY":   "test-key",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT": "xml",
				"API_KEY":    "test-key",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
		{
			name: "Error - invalid mongo connect timeout",
			envVars: map[string]string{
				"MONGO_CONNECT_TIMEOUT": "0",
				"API_KEY":               "test-key",
			},
			expectError: true,
			errorMsg:    "mongo connect timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

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

			os.Clearenv()
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 9090}
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
}

func TestConfig_Validate_MongoDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("API_KEY", "test-key")
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "dinehub", cfg.Mongo.Database)
	assert.Equal(t, 10, cfg.Mongo.ConnectTimeout)
	assert.Empty(t, cfg.NATS.URL)
}
