package rowwriter_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abscore/abscore/internal/adapters/outbound/rowwriter"
	"github.com/abscore/abscore/internal/application"
	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMetricsCSV_Columns(t *testing.T) {
	in := `team_name,design_id,challenge,binding_energy,contacts,interface_confidence,solubility,cdr3_identity,identity_qc
Alpha,d1,Challenge1,-11.2,31,0.82,0.64,40,true
Beta,b1,challenge2,,,0.55,,,
`
	got, err := rowwriter.ReadMetricsCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)

	a := got[0]
	assert.Equal(t, "Alpha", a.Design.Team)
	assert.Equal(t, "challenge1", a.Design.Challenge)
	assert.Equal(t, -11.2, *a.Raw.BindingEnergy)
	assert.Equal(t, 31, *a.Raw.Contacts)
	assert.Equal(t, true, *a.Raw.IdentityQC)
	assert.Nil(t, a.Raw.DockingQuality, "missing column is absent")

	b := got[1]
	assert.Nil(t, b.Raw.BindingEnergy, "empty cell is absent")
	assert.Nil(t, b.Raw.Contacts)
	assert.Equal(t, 0.55, *b.Raw.InterfaceConfidence)
	assert.Equal(t, 1, b.Raw.Present())
}

func TestReadMetricsCSV_ShortAliases(t *testing.T) {
	in := `team_name,design_id,delta_g,dockq,ipsae,iface_plddt,netsolp,contacts
Gamma,g1,-9.5,0.61,0.71,83,0.58,24.0
`
	got, err := rowwriter.ReadMetricsCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	raw := got[0].Raw
	assert.Equal(t, -9.5, *raw.BindingEnergy)
	assert.Equal(t, 0.61, *raw.DockingQuality)
	assert.Equal(t, 0.71, *raw.InterfaceConfidence)
	assert.Equal(t, 83.0, *raw.InterfaceResidue)
	assert.Equal(t, 0.58, *raw.Solubility)
	assert.Equal(t, 24, *raw.Contacts)
}

func TestReadMetricsCSV_FinalScoresExport(t *testing.T) {
	// Header and cell spelling of a previously exported final scores sheet.
	in := "team_name,design_id,delta_g,contacts,dockq,iface_plddt,ipsae,cdr_sasa,netsolp,cdr3_identity,anarci_pass," +
		"delta_g_score,contacts_score,dockq_score,ipsae_score,iface_plddt_score,cdr_sasa_score,netsolp_score,novelty_score," +
		"binding_struct_score,developability_score,novelty_category_score,final_score_10,final_score_100,is_viable,fail_reason\n" +
		"Delta,x1,-12.5,40.0,,88.1,0.81,100.0,0.7,42.0,True,9,9,0,9,9,0,8,9,6,8,9,7,70,True,\n"

	got, err := rowwriter.ReadMetricsCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	raw := got[0].Raw
	require.NotNil(t, raw.ParatopeArea)
	assert.Equal(t, 100.0, *raw.ParatopeArea)
	require.NotNil(t, raw.IdentityQC)
	assert.True(t, *raw.IdentityQC)
	assert.Nil(t, raw.DockingQuality)

	rows := application.ScoreMeasured(got)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsViable)
	require.NotNil(t, rows[0].FailReason)
	assert.Equal(t, scoring.ReasonParatope, *rows[0].FailReason)
}

func TestReadMetricsCSV_MissingMarkers(t *testing.T) {
	in := "team_name,design_id,solubility,binding_energy\nA,x,NaN,n/a\n"
	got, err := rowwriter.ReadMetricsCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Nil(t, got[0].Raw.Solubility)
	assert.Nil(t, got[0].Raw.BindingEnergy)
}

func TestReadMetricsCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no team column", "design_id,solubility\nd1,0.5\n"},
		{"bad float", "team_name,design_id,solubility\nA,d1,high\n"},
		{"fractional contacts", "team_name,design_id,contacts\nA,d1,3.5\n"},
		{"infinite", "team_name,design_id,binding_energy\nA,d1,-Inf\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rowwriter.ReadMetricsCSV(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestReadMetricsCSV_ErrorNamesLine(t *testing.T) {
	_, err := rowwriter.ReadMetricsCSV(strings.NewReader("team_name,design_id,solubility\nA,d1,0.5\nA,d2,high\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "solubility")
}

func TestCSV_RoundTripPreservesAbsence(t *testing.T) {
	rows := scoredRows()
	var buf bytes.Buffer
	require.NoError(t, rowwriter.Write(&buf, rowwriter.FormatCSV, rows))

	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	got, err := rowwriter.NewCSVSource().ReadMetrics(path)
	require.NoError(t, err)
	require.Len(t, got, len(rows))
	for i, m := range got {
		assert.Equal(t, rows[i].Raw(), m.Raw, rows[i].DesignID)
		assert.Equal(t, domain.DesignInput{Team: rows[i].Team, DesignID: rows[i].DesignID, Challenge: rows[i].Challenge}, m.Design)
	}
}
