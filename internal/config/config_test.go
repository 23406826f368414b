package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
http_port = 9090

[storage]
driver = "mongo"

[mongo]
uri = "mongodb://localhost:27017"
database = "reservas_test"

[booking]
weekend_contact = "+507 0000-0000"
agenda_upcoming_days = 5
agenda_lookahead_days = 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("MONGO_DATABASE", "reservas_env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "reservas_env", cfg.Mongo.Database)
	assert.Equal(t, "+507 0000-0000", cfg.Booking.WeekendContact)
	assert.Equal(t, 5, cfg.Booking.AgendaUpcomingDays)
	// значения, которых нет в файле, остаются по умолчанию
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nhttp_port = "), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(lookupFrom(map[string]string{
		"DB_HOST":     "db",
		"DB_PORT":     "6543",
		"DB_USER":     "reservas",
		"DB_PASSWORD": "secret",
		"DB_NAME":     "reservas",
		"LOG_LEVEL":   "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "host=db port=6543 user=reservas password=secret dbname=reservas sslmode=disable", cfg.Database.DSN())

	err = cfg.applyEnv(lookupFrom(map[string]string{"DB_PORT": "abc"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name: "postgres with credentials",
			mutate: func(c *Config) {
				c.Database.User = "reservas"
				c.Database.DBName = "reservas"
			},
		},
		{
			name:    "postgres without user",
			mutate:  func(c *Config) { c.Database.DBName = "reservas" },
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "mongo without uri",
			mutate:  func(c *Config) { c.Storage.Driver = "MONGO" },
			wantErr: ErrMissingCredentials,
		},
		{
			name:   "memory needs nothing",
			mutate: func(c *Config) { c.Storage.Driver = DriverMemory },
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "firestore" },
			wantErr: ErrInvalidConfig,
		},
		{
			name: "lookahead shorter than upcoming",
			mutate: func(c *Config) {
				c.Storage.Driver = DriverMemory
				c.Booking.AgendaLookaheadDays = 3
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "rate limit without burst",
			mutate: func(c *Config) {
				c.Storage.Driver = DriverMemory
				c.RateLimit.Burst = 0
			},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
