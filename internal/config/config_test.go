package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 8081
cors_origins = ["https://shop.example.com"]

[database]
host = "localhost"
user = "barber"
password = "from-file"
dbname = "booking"

[booking]
slot_interval_minutes = 30
lead_time_hours = 0
buffer_minutes = 10
timezone = "America/New_York"

[rate_limit]
enabled = true
backend = "redis"
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(``)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Booking.SlotIntervalMinutes)
	assert.Equal(t, 2, *cfg.Booking.LeadTimeHours)
	assert.Equal(t, 0, cfg.Booking.BufferMinutes)
	assert.Equal(t, "America/Chicago", cfg.Booking.Timezone)
	assert.Equal(t, 30, cfg.Booking.MaxDaysAhead)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window())
	assert.Equal(t, RateLimitBackendMemory, cfg.RateLimit.Backend)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestParse_Values(t *testing.T) {
	cfg, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "host=localhost port=5432 user=barber password=from-file dbname=booking sslmode=disable",
		cfg.Database.DSN())

	rules, err := cfg.BookingRules()
	require.NoError(t, err)
	assert.Equal(t, 30, rules.SlotIntervalMinutes)
	assert.Equal(t, 0, rules.LeadTimeHours, "explicit zero lead time is kept")
	assert.Equal(t, 10, rules.BufferMinutes)
	assert.Equal(t, "America/New_York", rules.Location.String())
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "from-env")
	t.Setenv("STRAPI_API_TOKEN", "token")
	t.Setenv("ADMIN_TOKEN", "admin")

	cfg, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "token", cfg.Strapi.Token)
	assert.Equal(t, "admin", cfg.Admin.Token)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"negative interval": "[booking]\nslot_interval_minutes = -5",
		"negative buffer":   "[booking]\nbuffer_minutes = -1",
		"negative lead":     "[booking]\nlead_time_hours = -1",
		"unknown timezone":  "[booking]\ntimezone = \"Mars/Olympus\"",
		"unknown backend":   "[rate_limit]\nbackend = \"memcached\"",
		"mail without host": "[mail]\nenabled = true",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, RateLimitBackendRedis, cfg.RateLimit.Backend)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
