package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soroscan.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
Endpoint: https://api.soroscan.io
APIKey: sk_test_123
Timeout: 10s
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://api.soroscan.io", cfg.Endpoint)
	require.Equal(t, "sk_test_123", cfg.APIKey)
	require.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soroscan.yml")
	require.NoError(t, os.WriteFile(path, []byte("Endpoint: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
