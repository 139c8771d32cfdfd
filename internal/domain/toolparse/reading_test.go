package toolparse_test

import (
	"testing"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/toolparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReading_Accessors(t *testing.T) {
	r := toolparse.Reading{toolparse.Contacts: 245, toolparse.BindingEnergy: -9.5}

	require.NotNil(t, r.Int(toolparse.Contacts))
	assert.Equal(t, 245, *r.Int(toolparse.Contacts))
	assert.Equal(t, -9.5, *r.Float(toolparse.BindingEnergy))
	assert.Nil(t, r.Float(toolparse.Solubility))
	assert.Equal(t, []toolparse.Metric{toolparse.BindingEnergy, toolparse.Contacts}, r.Metrics())
}

func TestReading_ApplyToLeavesAbsentUntouched(t *testing.T) {
	raw := domain.RawMetrics{Solubility: domain.Float(0.7)}
	toolparse.Reading{toolparse.Contacts: 30, toolparse.DockingQuality: 0.4}.ApplyTo(&raw)

	assert.Equal(t, 30, *raw.Contacts)
	assert.Equal(t, 0.4, *raw.DockingQuality)
	assert.Equal(t, 0.7, *raw.Solubility)
	assert.Nil(t, raw.BindingEnergy)
}

func TestReading_Merge(t *testing.T) {
	r := toolparse.Reading{toolparse.Contacts: 1}
	r.Merge(toolparse.Reading{toolparse.Contacts: 2, toolparse.Solubility: 0.5})
	assert.Equal(t, toolparse.Reading{toolparse.Contacts: 2, toolparse.Solubility: 0.5}, r)
}
