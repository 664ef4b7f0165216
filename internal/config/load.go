package config

import (
	"github.com/spf13/viper"

	"github.com/edp1096/lekidtools/internal/errors"
)

// Load returns the defaults with environment overrides applied.
func Load() (*Config, error) {
	return LoadWithViper(NewViper())
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads a TOML design file over the defaults. Environment
// variables still take precedence.
func LoadFromFile(configPath string) (*Config, error) {
	v := NewViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return config, nil
}
