package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abscore/abscore/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in a submissions root.
const FileName = ".abscore.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .abscore.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .abscore.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	return l.LoadFile(filepath.Join(dir, FileName), true)
}

// LoadFile reads a config file at an explicit path. When optional is true a
// missing file yields the defaults instead of an error.
func (l *YAMLLoader) LoadFile(path string, optional bool) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	// Decode over the defaults: keys the file omits keep their default, and
	// a tool or challenge the file names replaces the default entry whole.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	cfg = normalize(cfg)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// normalize lower-cases challenge identifiers and drops tools set to null,
// which is how a file disables a default tool.
func normalize(cfg domain.Config) domain.Config {
	challenges := make(map[string]domain.Challenge, len(cfg.Challenges))
	for id, ch := range cfg.Challenges {
		for i, ref := range ch.References {
			ch.References[i] = strings.ToUpper(strings.TrimSpace(ref))
		}
		challenges[strings.ToLower(id)] = ch
	}
	cfg.Challenges = challenges

	for name, td := range cfg.Tools {
		if td.Command == "" && len(td.Args) == 0 && len(td.Outputs) == 0 {
			delete(cfg.Tools, name)
		}
	}
	return cfg
}
