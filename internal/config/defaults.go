package config

import (
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "LEKID"

// SetDefaults configures an aluminium resonator at 5 GHz and 100 mK
func SetDefaults(v *viper.Viper) {
	// Material
	v.SetDefault("material.critical_temp", 1.2)

	// Operating point
	v.SetDefault("operating.temperature", 0.1)

	// Resonator
	v.SetDefault("resonator.f0", 5e9)
	v.SetDefault("resonator.lk_per_sq", 1e-12)
	v.SetDefault("resonator.lg", 10e-9)
	v.SetDefault("resonator.meander_length", 4e-3)
	v.SetDefault("resonator.meander_width", 2e-6)
	v.SetDefault("resonator.qc", 2e4)

	// Feedline
	v.SetDefault("feedline.z0", 50.0)

	// Sweep
	v.SetDefault("sweep.points", 2001)
	v.SetDefault("sweep.span", 0.004)
	v.SetDefault("sweep.type", "LIN")

	v.SetDefault("log.json", false)
}

// NewViper returns a viper instance with defaults and LEKID_* environment
// overrides, e.g. LEKID_OPERATING_TEMPERATURE.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}
