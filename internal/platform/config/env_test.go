package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Size int `env:"TEST_SIZE" envDefault:"12"`
}

// TestParseEnvDefaults falls back to envDefault when nothing is set.
func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 12, cfg.Size)
}

// TestParseEnvPrefixed reads the tag name behind EnvPrefix.
func TestParseEnvPrefixed(t *testing.T) {
	t.Setenv("STABLEMATCH_TEST_SIZE", "40")
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 40, cfg.Size)
}

// TestParseEnvIgnoresUnprefixed does not pick up the bare tag name.
func TestParseEnvIgnoresUnprefixed(t *testing.T) {
	t.Setenv("TEST_SIZE", "99")
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 12, cfg.Size)
}

// TestParseEnvError wraps conversion failures with the prefix context.
func TestParseEnvError(t *testing.T) {
	t.Setenv("STABLEMATCH_TEST_SIZE", "not-an-int")
	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env (STABLEMATCH_*):")
}
