package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/shiftwise/config"
	"github.com/shiftwise/shiftwise/core/factory"
	"github.com/shiftwise/shiftwise/infra/logger"
)

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	prev := cfgPath
	cfgPath = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { cfgPath = prev }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Solver.TimeLimitSeconds)
	assert.Equal(t, 10, cfg.Policy.CustomersPerLaborHour)
}

func TestLoadConfigReadsFile(t *testing.T) {
	prev := cfgPath
	cfgPath = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { cfgPath = prev }()
	require.NoError(t, os.WriteFile(cfgPath, []byte("solver:\n  time_limit_seconds: 3\n"), 0o644))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Solver.TimeLimitSeconds)
}

func TestBuildEngine(t *testing.T) {
	cfg := config.Default()
	eng, closer, err := buildEngine(cfg, logger.NopLogger{})
	require.NoError(t, err)
	require.NotNil(t, eng)
	closer()
}

func TestBuildEngineWithRunLog(t *testing.T) {
	cfg := config.Default()
	cfg.RunLog.Enabled = true
	cfg.RunLog.Path = filepath.Join(t.TempDir(), "runs.log")
	eng, closer, err := buildEngine(cfg, logger.NopLogger{})
	require.NoError(t, err)
	require.NotNil(t, eng)
	closer()
}

func TestBuildEngineUnknownSink(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Sinks = append(cfg.Metrics.Sinks, factory.ModuleConfig{Type: "bogus"})
	_, _, err := buildEngine(cfg, logger.NopLogger{})
	assert.Error(t, err)
}
