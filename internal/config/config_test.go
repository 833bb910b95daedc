package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: "prod"
http_server:
  address: "0.0.0.0:9000"
events_api:
  base_url: "https://events.example.com/api"
  distinguish_fetch_errors: true
booking:
  placeholder_count: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTPServer.Address)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, "https://events.example.com/api", cfg.EventsAPI.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.EventsAPI.Revalidate)
	assert.True(t, cfg.EventsAPI.DistinguishFetchErrors)
	assert.Equal(t, time.Second, cfg.Booking.SubmitDelay)
	assert.Equal(t, 3, cfg.Booking.PlaceholderCount)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
}

func TestLoadBaseURLFromEnv(t *testing.T) {
	path := writeConfig(t, `env: "dev"`)

	t.Setenv("BASE_URL", "http://api.internal:3000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://api.internal:3000", cfg.EventsAPI.BaseURL)
	assert.Equal(t, 10, cfg.Booking.PlaceholderCount)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{
			name: "Missing base url",
			body: `env: "local"`,
		},
		{
			name: "Base url is not an url",
			body: "events_api:\n  base_url: \"not a url\"",
		},
		{
			name: "Unknown env",
			body: "env: \"staging\"\nevents_api:\n  base_url: \"http://localhost\"",
		},
		{
			name: "Unknown cache driver",
			body: "events_api:\n  base_url: \"http://localhost\"\ncache:\n  driver: \"memcached\"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("BASE_URL", "")
			require.NoError(t, os.Unsetenv("BASE_URL"))

			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}
