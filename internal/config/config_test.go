package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/lekid"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, 1.2, cfg.Material.CriticalTemp)
	assert.Equal(t, 0.1, cfg.Operating.Temperature)
	assert.Equal(t, 5e9, cfg.Resonator.F0)
	assert.Equal(t, 2e4, cfg.Resonator.QC)
	assert.Equal(t, 50.0, cfg.Feedline.Z0)
	assert.Equal(t, 2001, cfg.Sweep.Points)
	assert.Equal(t, "LIN", cfg.Sweep.Type)
	assert.False(t, cfg.Log.JSON)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "niobium.toml")
	content := `
[material]
critical_temp = 9.2

[operating]
temperature = 1.5

[resonator]
f0 = 3e9
lk_per_sq = 0.2e-12
meander_length = 2e-3

[sweep]
points = 501
type = "DEC"

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9.2, cfg.Material.CriticalTemp)
	assert.Equal(t, 1.5, cfg.Operating.Temperature)
	assert.Equal(t, 3e9, cfg.Resonator.F0)
	assert.Equal(t, 0.2e-12, cfg.Resonator.LkPerSq)
	assert.Equal(t, 2e-3, cfg.Resonator.MeanderLength)
	// Untouched keys keep their defaults
	assert.Equal(t, 2e-6, cfg.Resonator.MeanderWidth)
	assert.Equal(t, 50.0, cfg.Feedline.Z0)
	assert.Equal(t, 501, cfg.Sweep.Points)
	assert.Equal(t, "DEC", cfg.Sweep.Type)
	assert.True(t, cfg.Log.JSON)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LEKID_OPERATING_TEMPERATURE", "0.25")
	t.Setenv("LEKID_SWEEP_POINTS", "11")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Operating.Temperature)
	assert.Equal(t, 11, cfg.Sweep.Points)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"above Tc", func(c *Config) { c.Operating.Temperature = 2 }, errors.ErrInvalidParameter},
		{"zero width", func(c *Config) { c.Resonator.MeanderWidth = 0 }, errors.ErrInvalidParameter},
		{"negative qc", func(c *Config) { c.Resonator.QC = -1 }, errors.ErrInvalidParameter},
		{"one point", func(c *Config) { c.Sweep.Points = 1 }, errors.ErrInvalidParameter},
		{"zero span", func(c *Config) { c.Sweep.Span = 0 }, errors.ErrInvalidParameter},
		{"bad sweep type", func(c *Config) { c.Sweep.Type = "LOG" }, errors.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWithViper(NewViper())
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestDesignParams(t *testing.T) {
	cfg, err := LoadWithViper(NewViper())
	require.NoError(t, err)

	assert.Equal(t, lekid.Params{
		F0:            5e9,
		ActualTemp:    0.1,
		CriticalTemp:  1.2,
		LkPerSq:       1e-12,
		Lg:            10e-9,
		MeanderLength: 4e-3,
		MeanderWidth:  2e-6,
		QC:            2e4,
		Z0:            50,
	}, cfg.DesignParams())

	sweep := cfg.AnalysisSweep()
	assert.Equal(t, 2001, sweep.Points)
	assert.Equal(t, 0.004, sweep.Span)
}
