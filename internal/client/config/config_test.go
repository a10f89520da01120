package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerAddr)
	assert.Equal(t, 3*time.Second, cfg.SlideshowInterval)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.NotEmpty(t, cfg.SessionFile)
	assert.NotEmpty(t, cfg.BudgetFile)
}

func TestParseJSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_addr": "http://store.local:9000",
		"slideshow_interval": "5s"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"client", "-c", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://store.local:9000", cfg.ServerAddr)
	assert.Equal(t, 5*time.Second, cfg.SlideshowInterval)
	// untouched fields keep their defaults
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseFlagsOverlay(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"client", "-a", "http://flags.local:7000", "-i", "7"}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://flags.local:7000", cfg.ServerAddr)
	assert.Equal(t, 7*time.Second, cfg.SlideshowInterval)
}

func TestFlagsWinOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_addr": "http://json.local"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"client", "-c", path, "-a", "http://flags.local"}
	defer func() { os.Args = oldArgs }()

	cfg := LoadConfig()
	assert.Equal(t, "http://flags.local", cfg.ServerAddr)
}
