package scoring_test

import (
	"testing"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestGate_AllAbsentPasses(t *testing.T) {
	ok, reason := scoring.Gate(domain.RawMetrics{})
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestGate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		raw    domain.RawMetrics
		reason string
	}{
		{"low confidence", domain.RawMetrics{InterfaceConfidence: domain.Float(0.59)}, scoring.ReasonConfidence},
		{"low solubility", domain.RawMetrics{Solubility: domain.Float(0.49)}, scoring.ReasonSolubility},
		{"weak energy", domain.RawMetrics{BindingEnergy: domain.Float(-5.9)}, scoring.ReasonEnergy},
		{"paratope at cutoff", domain.RawMetrics{ParatopeArea: domain.Float(250)}, scoring.ReasonParatope},
		{"identity at cutoff", domain.RawMetrics{CDR3Identity: domain.Float(95)}, scoring.ReasonIdentity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := scoring.Gate(tt.raw)
			assert.False(t, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestGate_BoundariesPass(t *testing.T) {
	raw := domain.RawMetrics{
		InterfaceConfidence: domain.Float(0.60),
		Solubility:          domain.Float(0.50),
		BindingEnergy:       domain.Float(-6.0),
		ParatopeArea:        domain.Float(250.01),
		CDR3Identity:        domain.Float(94.99),
	}
	ok, reason := scoring.Gate(raw)
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestGate_FirstFailureWins(t *testing.T) {
	raw := domain.RawMetrics{
		InterfaceConfidence: domain.Float(0.1),
		Solubility:          domain.Float(0.1),
		BindingEnergy:       domain.Float(0),
		ParatopeArea:        domain.Float(0),
		CDR3Identity:        domain.Float(100),
	}
	_, reason := scoring.Gate(raw)
	assert.Equal(t, scoring.ReasonConfidence, reason)

	raw.InterfaceConfidence = nil
	_, reason = scoring.Gate(raw)
	assert.Equal(t, scoring.ReasonSolubility, reason)

	raw.Solubility = nil
	_, reason = scoring.Gate(raw)
	assert.Equal(t, scoring.ReasonEnergy, reason)

	raw.BindingEnergy = nil
	_, reason = scoring.Gate(raw)
	assert.Equal(t, scoring.ReasonParatope, reason)

	raw.ParatopeArea = nil
	_, reason = scoring.Gate(raw)
	assert.Equal(t, scoring.ReasonIdentity, reason)
}
