package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/shiftwise/shiftwise/core/metrics"
)

// Config aggregates all runtime settings of the scheduling engine.
type Config struct {
	Solver  SolverConfig   `json:"solver"`
	Policy  PolicyConfig   `json:"policy"`
	Metrics metrics.Config `json:"metrics"`
	RunLog  RunLogConfig   `json:"runlog"`
}

// Load reads the configuration file at path. JSON and YAML are supported;
// values can be overridden through SW_-prefixed environment variables
// (SW_SOLVER__TIME_LIMIT_SECONDS maps to solver.time_limit_seconds).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("SW_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sw_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Solver.SetDefaults()
	cfg.Policy.SetDefaults()
	cfg.RunLog.SetDefaults()
	if err := cfg.Solver.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Policy.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.RunLog.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every section at its defaults.
func Default() *Config {
	var cfg Config
	cfg.Solver.SetDefaults()
	cfg.Policy.SetDefaults()
	cfg.RunLog.SetDefaults()
	return &cfg
}
