package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/san-kum/stocksim/internal/dynamo"
	"github.com/san-kum/stocksim/internal/experiment"
	"github.com/san-kum/stocksim/internal/logging"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Seed    int64   `yaml:"seed" default:"42"`
	Samples int     `yaml:"samples" default:"1000" validate:"gte=1"`
	Dt      float64 `yaml:"dt" default:"0.01" validate:"gt=0"`
	Sigma0  float64 `yaml:"sigma0" default:"0.2"`
	S0      float64 `yaml:"s0" default:"100"`
	Xi0     float64 `yaml:"xi0" default:"0.2"`
	Mu      float64 `yaml:"mu" default:"0.05"`
	P       float64 `yaml:"p" default:"0.1"`
	Alpha   float64 `yaml:"alpha" default:"1" validate:"gt=0"`
	Time    float64 `yaml:"time" default:"1" validate:"gt=0"`
	Scheme  string  `yaml:"scheme" default:"euler" validate:"required"`
	Mode    string  `yaml:"mode" default:"sequential" validate:"oneof=sequential independent"`
	Workers int     `yaml:"workers" validate:"gte=0"`

	Log logging.Config `yaml:"log"`
}

// DefaultConfig returns a Config populated from the struct defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

// Load reads a YAML file over DefaultConfig, so keys absent from the file
// keep their defaults and explicit zeros are preserved.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes a YAML file over cfg without validating it. Keys absent
// from the file leave cfg untouched.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate runs the struct range checks. Failures wrap
// dynamo.ErrInvalidParameter and name every offending field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", dynamo.ErrInvalidParameter, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s failed %s", strings.ToLower(fe.Namespace()), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("%w: %s", dynamo.ErrInvalidParameter, strings.Join(msgs, "; "))
}

func (c *Config) Params() dynamo.Params {
	return dynamo.Params{
		Dt:      c.Dt,
		Sigma0:  c.Sigma0,
		S0:      c.S0,
		Xi0:     c.Xi0,
		Mu:      c.Mu,
		P:       c.P,
		Alpha:   c.Alpha,
		T:       c.Time,
		Samples: c.Samples,
	}
}

// Experiment converts the file-level config into an experiment.Config.
func (c *Config) Experiment() (experiment.Config, error) {
	mode, err := dynamo.ParseMode(c.Mode)
	if err != nil {
		return experiment.Config{}, err
	}
	return experiment.Config{
		Scheme:  c.Scheme,
		Seed:    c.Seed,
		Params:  c.Params(),
		Mode:    mode,
		Workers: c.Workers,
	}, nil
}
