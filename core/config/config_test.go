package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "index.yaml", cfg.Index)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MDECK_INDEX", "refs/index.yaml")
	t.Setenv("MDECK_OUTPUT_DIR", "/tmp/out")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "refs/index.yaml", cfg.Index)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
}
