package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/abscore/abscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawMetrics_Present(t *testing.T) {
	assert.Equal(t, 0, domain.RawMetrics{}.Present())

	raw := domain.RawMetrics{
		BindingEnergy: domain.Float(-9),
		Contacts:      domain.Int(0),
		Solubility:    domain.Float(0),
	}
	assert.Equal(t, 3, raw.Present(), "zero values still count as present")
}

func TestRawMetrics_AbsentMarshalsAsNull(t *testing.T) {
	data, err := json.Marshal(domain.RawMetrics{Contacts: domain.Int(12)})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Nil(t, m["binding_energy"])
	assert.Contains(t, m, "binding_energy")
	assert.Equal(t, 12.0, m["contacts"])
}
