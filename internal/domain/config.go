package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Identity strategies selectable through novelty.strategy.
const (
	StrategyWindow = "window"
	StrategyMotif  = "motif"
)

// ValidStrategies enumerates the CDR3 identity strategies.
var ValidStrategies = []string{StrategyWindow, StrategyMotif}

// Known tool names. A descriptor may name any parser explicitly; these are
// the defaults used when parser is left empty.
const (
	ToolProdigy = "prodigy"
	ToolIPSAE   = "ipsae"
	ToolDockQ   = "dockq"
	ToolNetSolP = "netsolp"
)

// DefaultAreaPerContact converts a contact count into a buried paratope area proxy (Å²).
const DefaultAreaPerContact = 25.0

// DefaultWorkers bounds concurrent designs when the config does not say.
const DefaultWorkers = 4

// DefaultToolTimeout applies to tools without an explicit timeout.
const DefaultToolTimeout = 10 * time.Minute

// Config holds the scoring configuration loaded from .abscore.yaml.
type Config struct {
	Tools          map[string]ToolDescriptor `yaml:"tools"           json:"tools,omitempty"`
	Novelty        NoveltyConfig             `yaml:"novelty"         json:"novelty"`
	Challenges     map[string]Challenge      `yaml:"challenges"      json:"challenges,omitempty"`
	Paratope       ParatopeConfig            `yaml:"paratope"        json:"paratope"`
	Workers        int                       `yaml:"workers"         json:"workers,omitempty"`
	DefaultTimeout time.Duration             `yaml:"default_timeout" json:"default_timeout,omitempty"`
}

// ToolDescriptor says how to invoke one external tool. Args, Dir and Outputs
// are templates over the design variables ({complex}, {fasta}, {native}, ...).
type ToolDescriptor struct {
	Command  string            `yaml:"command"  json:"command"`
	Args     []string          `yaml:"args"     json:"args,omitempty"`
	Dir      string            `yaml:"dir"      json:"dir,omitempty"`
	Outputs  map[string]string `yaml:"outputs"  json:"outputs,omitempty"`
	Parser   string            `yaml:"parser"   json:"parser,omitempty"`
	Timeout  time.Duration     `yaml:"timeout"  json:"timeout,omitempty"`
	Required bool              `yaml:"required" json:"required,omitempty"`
	Env      map[string]string `yaml:"env"      json:"env,omitempty"`
}

// NoveltyConfig selects the CDR3 identity strategy.
type NoveltyConfig struct {
	Strategy string `yaml:"strategy" json:"strategy"`
}

// Challenge carries the comparison targets of one competition challenge.
type Challenge struct {
	References    []string `yaml:"references"     json:"references"`
	NativeComplex string   `yaml:"native_complex" json:"native_complex,omitempty"`
}

// ParatopeConfig tunes the contact-count proxy for buried paratope area.
type ParatopeConfig struct {
	AreaPerContact float64 `yaml:"area_per_contact" json:"area_per_contact"`
}

// Reference CDR-H3 sequences of the two competition challenges.
const (
	RefCDRH3Pembrolizumab = "CARRDYRFDMGFDYW"
	RefCDRH3Germline      = "CAKYDGIYGELDFW"
	RefCDRH3Nivolumab     = "CATNDDYW"
)

// DefaultConfig returns the competition defaults: both challenge reference
// panels, the window strategy, and the four external tools invoked by name
// from PATH.
func DefaultConfig() Config {
	return Config{
		Tools: map[string]ToolDescriptor{
			ToolProdigy: {
				Command:  "prodigy",
				Args:     []string{"{complex}"},
				Required: true,
			},
			ToolIPSAE: {
				Command: "ipsae",
				Args:    []string{"{pae}", "{complex}", "{antibody_len}", "{antigen_len}"},
				Outputs: map[string]string{
					"scores": "{complex_dir}/{complex_stem}_{antibody_len}_{antigen_len}.txt",
					"byres":  "{complex_dir}/{complex_stem}_{antibody_len}_{antigen_len}_byres.txt",
				},
			},
			ToolDockQ: {
				Command: "DockQ",
				Args:    []string{"{complex}", "{native}"},
			},
			ToolNetSolP: {
				Command: "python",
				Args: []string{
					"predict.py",
					"--FASTA_PATH", "{fasta}",
					"--OUTPUT_PATH", "{fasta_dir}/{fasta_stem}_netsolp.csv",
					"--MODEL_TYPE", "ESM12",
					"--PREDICTION_TYPE", "S",
				},
				Outputs: map[string]string{
					"predictions": "{fasta_dir}/{fasta_stem}_netsolp.csv",
				},
			},
		},
		Novelty: NoveltyConfig{Strategy: StrategyWindow},
		Challenges: map[string]Challenge{
			"challenge1": {References: []string{RefCDRH3Pembrolizumab}},
			"challenge2": {References: []string{RefCDRH3Germline, RefCDRH3Nivolumab}},
		},
		Paratope:       ParatopeConfig{AreaPerContact: DefaultAreaPerContact},
		Workers:        DefaultWorkers,
		DefaultTimeout: DefaultToolTimeout,
	}
}

var (
	peptidePattern     = regexp.MustCompile(`^[ACDEFGHIKLMNPQRSTVWY]+$`)
	placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)
)

// TemplateVars enumerates the placeholders a descriptor may reference.
var TemplateVars = []string{
	"complex", "complex_dir", "complex_stem",
	"pae", "fasta", "fasta_dir", "fasta_stem",
	"native", "antibody_len", "antigen_len",
}

// Validate checks the config for invalid values and returns a descriptive error
// wrapping ErrConfiguration.
func (c Config) Validate() error {
	// 1. strategy must be known
	if !contains(ValidStrategies, c.Novelty.Strategy) {
		return fmt.Errorf("%w: unknown novelty.strategy %q (valid: %s)",
			ErrConfiguration, c.Novelty.Strategy, strings.Join(ValidStrategies, ", "))
	}

	// 2. every challenge needs at least one well-formed reference
	for _, id := range sortedKeys(c.Challenges) {
		ch := c.Challenges[id]
		if len(ch.References) == 0 {
			return fmt.Errorf("%w: challenge %q has no reference sequences", ErrConfiguration, id)
		}
		for i, ref := range ch.References {
			if !peptidePattern.MatchString(ref) {
				return fmt.Errorf("%w: challenges.%s.references[%d] = %q is not an amino-acid sequence",
					ErrConfiguration, id, i, ref)
			}
		}
	}

	// 3. tools need a command and may only reference known placeholders
	for _, name := range sortedKeys(c.Tools) {
		td := c.Tools[name]
		if strings.TrimSpace(td.Command) == "" {
			return fmt.Errorf("%w: tools.%s.command must not be empty", ErrConfiguration, name)
		}
		if td.Timeout < 0 {
			return fmt.Errorf("%w: tools.%s.timeout must not be negative", ErrConfiguration, name)
		}
		templates := append([]string{td.Dir}, td.Args...)
		for _, o := range td.Outputs {
			templates = append(templates, o)
		}
		for _, tpl := range templates {
			for _, m := range placeholderPattern.FindAllStringSubmatch(tpl, -1) {
				if !contains(TemplateVars, m[1]) {
					return fmt.Errorf("%w: tools.%s references unknown placeholder {%s}", ErrConfiguration, name, m[1])
				}
			}
		}
	}

	// 4. numeric knobs
	if c.Paratope.AreaPerContact < 0 {
		return fmt.Errorf("%w: paratope.area_per_contact must be >= 0 (got %.2f)", ErrConfiguration, c.Paratope.AreaPerContact)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0 (got %d)", ErrConfiguration, c.Workers)
	}

	return nil
}

// Panel returns the reference sequences for a challenge. A design whose
// challenge has no configured panel cannot be compared and is a
// configuration error, never a silent default.
func (c Config) Panel(challenge string) ([]string, error) {
	if challenge == "" {
		return nil, fmt.Errorf("%w: design has no challenge identifier", ErrConfiguration)
	}
	ch, ok := c.Challenges[strings.ToLower(challenge)]
	if !ok || len(ch.References) == 0 {
		return nil, fmt.Errorf("%w: no reference panel configured for challenge %q", ErrConfiguration, challenge)
	}
	return ch.References, nil
}

// NativeFor returns the native complex configured for a challenge, or "".
func (c Config) NativeFor(challenge string) string {
	return c.Challenges[strings.ToLower(challenge)].NativeComplex
}

// EffectiveWorkers returns the configured worker count, falling back to DefaultWorkers.
func (c Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return DefaultWorkers
}

// EffectiveTimeout returns the timeout for a tool descriptor.
func (c Config) EffectiveTimeout(td ToolDescriptor) time.Duration {
	switch {
	case td.Timeout > 0:
		return td.Timeout
	case c.DefaultTimeout > 0:
		return c.DefaultTimeout
	default:
		return DefaultToolTimeout
	}
}

// ParserFor returns the parser name of a tool: explicit, else the tool name.
func (td ToolDescriptor) ParserFor(tool string) string {
	if td.Parser != "" {
		return td.Parser
	}
	return tool
}

// ToolNames returns the configured tool names in stable order.
func (c Config) ToolNames() []string {
	return sortedKeys(c.Tools)
}

// ExpandTemplate substitutes {name} placeholders from vars. Placeholders
// whose value is empty or unknown are left in place and reported in missing.
func ExpandTemplate(tpl string, vars map[string]string) (out string, missing []string) {
	out = placeholderPattern.ReplaceAllStringFunc(tpl, func(m string) string {
		name := m[1 : len(m)-1]
		if v := vars[name]; v != "" {
			return v
		}
		missing = append(missing, name)
		return m
	})
	return out, missing
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
