package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	appconfig "github.com/abscore/abscore/internal/adapters/outbound/config"
	"github.com/abscore/abscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".abscore.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ExplicitMissingFileIsError(t *testing.T) {
	_, err := appconfig.New().LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), false)
	assert.Error(t, err)
}

func TestYAMLLoader_OverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
novelty:
  strategy: motif
workers: 8
default_timeout: 90s
tools:
  dockq:
    command: /opt/dockq/DockQ
    args: ["{complex}", "{native}", "--short"]
    timeout: 2m
challenges:
  Challenge1:
    references: [carrdyrfdmgfdyw]
    native_complex: /refs/5ggs.pdb
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyMotif, cfg.Novelty.Strategy)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 90*time.Second, cfg.DefaultTimeout)
	assert.Equal(t, "/opt/dockq/DockQ", cfg.Tools["dockq"].Command)
	assert.Equal(t, 2*time.Minute, cfg.Tools["dockq"].Timeout)
	assert.Equal(t, "prodigy", cfg.Tools["prodigy"].Command, "untouched tools keep defaults")
	assert.Equal(t, []string{"CARRDYRFDMGFDYW"}, cfg.Challenges["challenge1"].References)
	assert.Equal(t, "/refs/5ggs.pdb", cfg.NativeFor("challenge1"))
	assert.Contains(t, cfg.Challenges, "challenge2")
	assert.Equal(t, domain.DefaultAreaPerContact, cfg.Paratope.AreaPerContact)
}

func TestYAMLLoader_NullDisablesTool(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
tools:
  netsolp: ~
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.NotContains(t, cfg.Tools, "netsolp")
	assert.Contains(t, cfg.Tools, "prodigy")
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .abscore.yaml")
}

func TestYAMLLoader_ValidationError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
novelty:
  strategy: blast
`)
	_, err := appconfig.New().Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "invalid .abscore.yaml")
}

func TestYAMLLoader_UnknownPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
tools:
  extra:
    command: score.sh
    args: ["{structure}"]
`)
	_, err := appconfig.New().Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
