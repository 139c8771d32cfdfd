package toolparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberToken = regexp.MustCompile(`[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`)

// Field describes how to pull one numeric value out of tool text.
type Field struct {
	Metric Metric
	// Label is matched case-insensitively by the line-scan fallback.
	Label string
	// Patterns are tried in order; each must capture the number in group 1.
	Patterns []*regexp.Regexp
	// Min and Max bound the valid domain, inclusive.
	Min, Max float64
	// Integer rejects candidates with a fractional part.
	Integer bool
	// AnyToken lets the line scan accept any numeric token on a labelled
	// line instead of only the first one after a colon.
	AnyToken bool
}

// Extract returns the first valid candidate. Every match of every pattern
// is a candidate, in pattern order; values that fail to parse or fall
// outside [Min, Max] are skipped rather than accepted. When no pattern
// yields a valid value the labelled-line scan is tried. The text should
// already be normalized.
func (f Field) Extract(text string) (float64, bool) {
	for _, re := range f.Patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			if v, ok := f.accept(m[1]); ok {
				return v, true
			}
		}
	}
	return f.scanLines(text)
}

func (f Field) scanLines(text string) (float64, bool) {
	if f.Label == "" {
		return 0, false
	}
	label := strings.ToLower(f.Label)
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToLower(line), label) {
			continue
		}
		if f.AnyToken {
			fields := strings.Fields(strings.NewReplacer("=", " ", ":", " ").Replace(line))
			for _, tok := range fields {
				if v, ok := f.accept(tok); ok {
					return v, true
				}
			}
			continue
		}
		_, after, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		after, _, _ = strings.Cut(after, ":")
		if tok := numberToken.FindString(after); tok != "" {
			if v, ok := f.accept(tok); ok {
				return v, true
			}
		}
	}
	return 0, false
}

func (f Field) accept(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < f.Min || v > f.Max {
		return 0, false
	}
	if f.Integer && v != math.Trunc(v) {
		return 0, false
	}
	return v, true
}

// ExtractAll runs every field over the normalized text.
func ExtractAll(text string, fields ...Field) Reading {
	text = Normalize(text)
	r := Reading{}
	for _, f := range fields {
		if v, ok := f.Extract(text); ok {
			r[f.Metric] = v
		}
	}
	return r
}
