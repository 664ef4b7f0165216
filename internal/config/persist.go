package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/edp1096/lekidtools/internal/errors"
)

// Formats accepted by Marshal
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Marshal renders cfg as toml, json or yaml.
func Marshal(cfg *Config, format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(format) {
	case FormatTOML, "":
		data, err = toml.Marshal(cfg)
	case FormatJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML, "yml":
		data, err = yaml.Marshal(cfg)
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnsupported, "format %q", format),
			"supported: toml, json, yaml")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal config as %s", format)
	}

	return data, nil
}

// Save writes cfg as TOML. An existing file is only replaced when force is set.
func Save(cfg *Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(
				errors.Newf("config file %s already exists", path),
				"pass --force to overwrite")
		}
	}

	data, err := Marshal(cfg, FormatTOML)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}

	return nil
}
