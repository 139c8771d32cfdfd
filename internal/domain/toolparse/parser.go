package toolparse

import (
	"fmt"
	"sort"

	"github.com/abscore/abscore/internal/domain"
)

// Parser turns the captured output of one external tool into a Reading.
// Unparseable output yields an empty Reading; it is never an error.
type Parser interface {
	Name() string
	Metrics() []Metric
	Parse(out domain.ToolOutput) Reading
}

var registry = map[string]Parser{}

func register(p Parser) {
	registry[p.Name()] = p
}

func init() {
	register(Prodigy{})
	register(IPSAE{})
	register(DockQ{})
	register(NetSolP{})
}

// Lookup returns the parser registered under name.
func Lookup(name string) (Parser, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: no parser named %q (available: %v)", domain.ErrConfiguration, name, Names())
	}
	return p, nil
}

// Names returns the registered parser names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseText runs a parser over bare text, as if it were a tool's combined
// output with no output files.
func ParseText(p Parser, text string) Reading {
	return p.Parse(domain.ToolOutput{Text: text})
}
