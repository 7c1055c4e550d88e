package config

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"Baseband/internel/translate"
	"Baseband/pkg/registry"
	"Baseband/pkg/symbol"
)

var f = translate.From

var (
	ErrInputType  = errors.New(f("input type must be digital or analog"))
	ErrSchemeKind = errors.New(f("scheme does not match input type"))
)

type Config struct {
	Input struct {
		Type    string    `yaml:"type"`
		Bits    string    `yaml:"bits"`
		Samples []float64 `yaml:"samples"`
	} `yaml:"input"`

	Encoding struct {
		Scheme     string `yaml:"scheme"`
		Scrambling string `yaml:"scrambling"`
		Decode     bool   `yaml:"decode"`
	} `yaml:"encoding"`

	Output struct {
		Binary string `yaml:"binary"`
		Plot   bool   `yaml:"plot"`
	} `yaml:"output"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the input type against the scheme and parses the input.
func (c *Config) Validate() (registry.Kind, error) {
	var kind registry.Kind
	switch strings.ToLower(strings.TrimSpace(c.Input.Type)) {
	case "digital":
		kind = registry.Digital
	case "analog":
		kind = registry.Analog
	default:
		return kind, ErrInputType
	}

	schemeKind, err := registry.KindOf(c.Encoding.Scheme)
	if err != nil {
		return kind, err
	}
	if schemeKind != kind {
		return kind, ErrSchemeKind
	}
	return kind, nil
}

// Bits parses the digital input.
func (c *Config) Bits() (symbol.Bits, error) {
	return symbol.ParseBits(strings.TrimSpace(c.Input.Bits))
}

// Samples returns the analog input.
func (c *Config) Samples() []symbol.Sample {
	samples := make([]symbol.Sample, len(c.Input.Samples))
	for i, s := range c.Input.Samples {
		samples[i] = symbol.Sample(s)
	}
	return samples
}
