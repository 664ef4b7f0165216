package config

import (
	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/analysis"
	"github.com/edp1096/lekidtools/pkg/lekid"
)

// Config describes one resonator design and how to sweep it.
type Config struct {
	Material  MaterialConfig  `mapstructure:"material" toml:"material" json:"material" yaml:"material"`
	Operating OperatingConfig `mapstructure:"operating" toml:"operating" json:"operating" yaml:"operating"`
	Resonator ResonatorConfig `mapstructure:"resonator" toml:"resonator" json:"resonator" yaml:"resonator"`
	Feedline  FeedlineConfig  `mapstructure:"feedline" toml:"feedline" json:"feedline" yaml:"feedline"`
	Sweep     SweepConfig     `mapstructure:"sweep" toml:"sweep" json:"sweep" yaml:"sweep"`
	Log       LogConfig       `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// MaterialConfig holds film properties
type MaterialConfig struct {
	CriticalTemp float64 `mapstructure:"critical_temp" toml:"critical_temp" json:"critical_temp" yaml:"critical_temp"` // K
}

// OperatingConfig holds the bath conditions
type OperatingConfig struct {
	Temperature float64 `mapstructure:"temperature" toml:"temperature" json:"temperature" yaml:"temperature"` // K
}

// ResonatorConfig holds the lumped-element geometry
type ResonatorConfig struct {
	F0            float64 `mapstructure:"f0" toml:"f0" json:"f0" yaml:"f0"`                                                 // Hz
	LkPerSq       float64 `mapstructure:"lk_per_sq" toml:"lk_per_sq" json:"lk_per_sq" yaml:"lk_per_sq"`                     // H per square
	Lg            float64 `mapstructure:"lg" toml:"lg" json:"lg" yaml:"lg"`                                                 // H
	MeanderLength float64 `mapstructure:"meander_length" toml:"meander_length" json:"meander_length" yaml:"meander_length"` // m
	MeanderWidth  float64 `mapstructure:"meander_width" toml:"meander_width" json:"meander_width" yaml:"meander_width"`     // m
	QC            float64 `mapstructure:"qc" toml:"qc" json:"qc" yaml:"qc"`
}

// FeedlineConfig holds the readout line
type FeedlineConfig struct {
	Z0 float64 `mapstructure:"z0" toml:"z0" json:"z0" yaml:"z0"` // ohm
}

// SweepConfig controls the equivalent-circuit simulation
type SweepConfig struct {
	Points int     `mapstructure:"points" toml:"points" json:"points" yaml:"points"`
	Span   float64 `mapstructure:"span" toml:"span" json:"span" yaml:"span"` // full width relative to the loaded resonance
	Type   string  `mapstructure:"type" toml:"type" json:"type" yaml:"type"` // LIN, DEC or OCT
}

// LogConfig controls logger output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := c.DesignParams().Validate(); err != nil {
		return errors.Wrap(err, "design")
	}

	if c.Sweep.Points < 2 {
		return errors.Wrapf(errors.ErrInvalidParameter, "sweep.points must be at least 2, got %d", c.Sweep.Points)
	}
	if !(c.Sweep.Span > 0 && c.Sweep.Span < 2) {
		return errors.Wrapf(errors.ErrInvalidParameter, "sweep.span must be in (0, 2), got %g", c.Sweep.Span)
	}
	switch c.Sweep.Type {
	case "LIN", "DEC", "OCT", "lin", "dec", "oct":
	default:
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidParameter, "sweep.type %q", c.Sweep.Type),
			"use LIN, DEC or OCT")
	}

	return nil
}

// DesignParams converts the file layout to lekid.Params
func (c *Config) DesignParams() lekid.Params {
	return lekid.Params{
		F0:            c.Resonator.F0,
		ActualTemp:    c.Operating.Temperature,
		CriticalTemp:  c.Material.CriticalTemp,
		LkPerSq:       c.Resonator.LkPerSq,
		Lg:            c.Resonator.Lg,
		MeanderLength: c.Resonator.MeanderLength,
		MeanderWidth:  c.Resonator.MeanderWidth,
		QC:            c.Resonator.QC,
		Z0:            c.Feedline.Z0,
	}
}

// AnalysisSweep converts the sweep section for analysis.SimulateLEKID
func (c *Config) AnalysisSweep() analysis.Sweep {
	return analysis.Sweep{
		Points: c.Sweep.Points,
		Span:   c.Sweep.Span,
		Type:   c.Sweep.Type,
	}
}
