package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/the-sequence/constants"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, constants.TickInterval, cfg.Interval)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Sound)
	assert.Equal(t, constants.DefaultLogFile, cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.yaml")
	content := "interval: 500ms\nsound: true\nfrom: 990\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Interval)
	assert.True(t, cfg.Sound)
	assert.Equal(t, uint64(990), cfg.From)
	// Untouched keys keep their defaults
	assert.Equal(t, constants.DefaultLogFile, cfg.LogFile)
	assert.Equal(t, constants.DefaultChimeLevel, cfg.Volume)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed: 3\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		constants.EnvInterval: "2s",
		constants.EnvDebug:    "true",
		constants.EnvSound:    "1",
		constants.EnvVolume:   "25",
		constants.EnvLogFile:  "/tmp/seq.log",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Sound)
	assert.InDelta(t, 0.25, cfg.Volume, 1e-9)
	assert.Equal(t, "/tmp/seq.log", cfg.LogFile)
}

func TestApplyEnvEmptyIgnored(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{constants.EnvInterval: ""})))
	assert.Equal(t, constants.TickInterval, cfg.Interval)
}

func TestApplyEnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{constants.EnvInterval, "soon"},
		{constants.EnvDebug, "maybe"},
		{constants.EnvSound, "loud"},
		{constants.EnvVolume, "half"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(envMap(map[string]string{tt.key: tt.value}))
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"negative interval", func(c *Config) { c.Interval = -time.Second }},
		{"volume too high", func(c *Config) { c.Volume = 1.5 }},
		{"volume negative", func(c *Config) { c.Volume = -0.1 }},
		{"debug without file", func(c *Config) { c.Debug = true; c.LogFile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.MaxSteps = 12

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_steps: 12")

	decoded := Default()
	require.NoError(t, decoded.Decode(data))
	assert.Equal(t, cfg, decoded)
}
