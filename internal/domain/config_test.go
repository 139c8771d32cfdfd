package domain_test

import (
	"testing"
	"time"

	"github.com/abscore/abscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, domain.StrategyWindow, cfg.Novelty.Strategy)
	assert.Equal(t, []string{"dockq", "ipsae", "netsolp", "prodigy"}, cfg.ToolNames())
	assert.True(t, cfg.Tools[domain.ToolProdigy].Required)
}

func TestDefaultConfig_ChallengePanels(t *testing.T) {
	cfg := domain.DefaultConfig()

	refs, err := cfg.Panel("challenge1")
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RefCDRH3Pembrolizumab}, refs)

	refs, err = cfg.Panel("Challenge2")
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RefCDRH3Germline, domain.RefCDRH3Nivolumab}, refs)
}

func TestPanel_MissingIsConfigurationError(t *testing.T) {
	cfg := domain.DefaultConfig()

	_, err := cfg.Panel("challenge9")
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = cfg.Panel("")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestPanel_EmptyIsConfigurationError(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Challenges["challenge3"] = domain.Challenge{}
	_, err := cfg.Panel("challenge3")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNativeFor(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Empty(t, cfg.NativeFor("challenge1"))

	cfg.Challenges["challenge1"] = domain.Challenge{
		References:    []string{domain.RefCDRH3Pembrolizumab},
		NativeComplex: "/refs/5ggs.pdb",
	}
	assert.Equal(t, "/refs/5ggs.pdb", cfg.NativeFor("CHALLENGE1"))
}

func TestEffectiveWorkers(t *testing.T) {
	assert.Equal(t, domain.DefaultWorkers, domain.Config{}.EffectiveWorkers())
	assert.Equal(t, 9, domain.Config{Workers: 9}.EffectiveWorkers())
}

func TestEffectiveTimeout(t *testing.T) {
	cfg := domain.Config{}
	assert.Equal(t, domain.DefaultToolTimeout, cfg.EffectiveTimeout(domain.ToolDescriptor{}))

	cfg.DefaultTimeout = time.Minute
	assert.Equal(t, time.Minute, cfg.EffectiveTimeout(domain.ToolDescriptor{}))
	assert.Equal(t, 5*time.Second, cfg.EffectiveTimeout(domain.ToolDescriptor{Timeout: 5 * time.Second}))
}

func TestParserFor(t *testing.T) {
	assert.Equal(t, "prodigy", domain.ToolDescriptor{}.ParserFor("prodigy"))
	assert.Equal(t, "dockq", domain.ToolDescriptor{Parser: "dockq"}.ParserFor("dockq-v2"))
}

// --- Validation tests ---

func TestValidate_UnknownStrategy(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Novelty.Strategy = "blast"
	err := cfg.Validate()
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "blast")
}

func TestValidate_ChallengeWithoutReferences(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Challenges["challenge3"] = domain.Challenge{}
	err := cfg.Validate()
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "challenge3")
}

func TestValidate_ReferenceNotPeptide(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Challenges["challenge1"] = domain.Challenge{References: []string{"CAR-123"}}
	err := cfg.Validate()
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "amino-acid")
}

func TestValidate_EmptyCommand(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Tools["extra"] = domain.ToolDescriptor{Command: "  "}
	err := cfg.Validate()
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "tools.extra.command")
}

func TestValidate_UnknownPlaceholder(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Tools["extra"] = domain.ToolDescriptor{Command: "x", Args: []string{"{structure}"}}
	err := cfg.Validate()
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "{structure}")
}

func TestValidate_UnknownPlaceholderInOutputs(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Tools["extra"] = domain.ToolDescriptor{
		Command: "x",
		Outputs: map[string]string{"out": "{nope}.csv"},
	}
	assert.ErrorIs(t, cfg.Validate(), domain.ErrConfiguration)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := domain.DefaultConfig()
	td := cfg.Tools[domain.ToolProdigy]
	td.Timeout = -time.Second
	cfg.Tools[domain.ToolProdigy] = td
	assert.ErrorIs(t, cfg.Validate(), domain.ErrConfiguration)
}

func TestValidate_NegativeNumbers(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Paratope.AreaPerContact = -1
	assert.ErrorIs(t, cfg.Validate(), domain.ErrConfiguration)

	cfg = domain.DefaultConfig()
	cfg.Workers = -2
	assert.ErrorIs(t, cfg.Validate(), domain.ErrConfiguration)
}

func TestExpandTemplate(t *testing.T) {
	vars := map[string]string{"complex_dir": "/s", "complex_stem": "d1_complex", "antibody_len": "230", "native": ""}

	out, missing := domain.ExpandTemplate("{complex_dir}/{complex_stem}_{antibody_len}.txt", vars)
	assert.Equal(t, "/s/d1_complex_230.txt", out)
	assert.Empty(t, missing)

	out, missing = domain.ExpandTemplate("{native}", vars)
	assert.Equal(t, "{native}", out)
	assert.Equal(t, []string{"native"}, missing)

	out, missing = domain.ExpandTemplate("--plain", vars)
	assert.Equal(t, "--plain", out)
	assert.Empty(t, missing)
}
