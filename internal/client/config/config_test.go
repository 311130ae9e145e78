package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerURL)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-a", "http://notes.example.com"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	require.Equal(t, "http://notes.example.com", cfg.ServerURL)
}

func TestParseJson_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url":"http://json.example.com"}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	require.Equal(t, "http://json.example.com", cfg.ServerURL)
}

func TestParseJson_MissingFlagKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerURL)
}
