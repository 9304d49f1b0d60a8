package config

import "sort"

// Presets are named starting points for `stocksim run --preset`.
var Presets = map[string]func() *Config{
	"default": DefaultConfig,
	// two short euler paths
	"example": func() *Config {
		cfg := DefaultConfig()
		cfg.Seed = 42
		cfg.Samples = 2
		cfg.Dt = 0.01
		cfg.Sigma0 = 0.2
		cfg.S0 = 100
		cfg.Xi0 = 0.15
		cfg.Mu = 0.05
		cfg.P = 0.1
		cfg.Alpha = 2
		cfg.Time = 0.05
		cfg.Scheme = "euler"
		return cfg
	},
	// frozen volatility; xi relaxes toward sigma0 as 1 - exp(-t/alpha)
	"relaxation": func() *Config {
		cfg := DefaultConfig()
		cfg.Seed = 3
		cfg.Samples = 1
		cfg.Dt = 1e-3
		cfg.Sigma0 = 0.2
		cfg.S0 = 100
		cfg.Xi0 = 0.1
		cfg.Mu = 0.05
		cfg.P = 0
		cfg.Alpha = 1
		cfg.Time = 1
		cfg.Scheme = "milstein"
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
