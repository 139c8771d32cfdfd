package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abscore/abscore/internal/adapters/inbound/cli"
	"github.com/abscore/abscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strongFlags = []string{
	"--delta-g=-13", "--contacts", "30", "--dockq", "0.9", "--iface-plddt", "85",
	"--ipsae", "0.85", "--paratope-area", "700", "--solubility", "0.8", "--cdr3-identity", "40",
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestScoreCommand_JSON(t *testing.T) {
	args := append([]string{"score", "--team", "TeamA", "--design", "d1", "--challenge", "Challenge1", "--json"}, strongFlags...)
	out, err := execute(t, args...)
	require.NoError(t, err)

	var row domain.ResultRow
	require.NoError(t, json.Unmarshal([]byte(out), &row))
	assert.Equal(t, "TeamA", row.Team)
	assert.Equal(t, "challenge1", row.Challenge)
	assert.True(t, row.IsViable)
	assert.Greater(t, row.FinalScore100, 85.0)
	require.NotNil(t, row.Contacts)
	assert.Equal(t, int64(30), *row.Contacts)
}

func TestScoreCommand_UnsetFlagsStayAbsent(t *testing.T) {
	out, err := execute(t, "score", "--solubility", "0.8", "--json")
	require.NoError(t, err)

	var row domain.ResultRow
	require.NoError(t, json.Unmarshal([]byte(out), &row))
	assert.Nil(t, row.BindingEnergy)
	assert.Nil(t, row.Contacts)
	require.NotNil(t, row.Solubility)
	assert.Equal(t, 0.8, *row.Solubility)
}

func TestScoreCommand_Scorecard(t *testing.T) {
	out, err := execute(t, append([]string{"score", "--team", "TeamA", "--design", "d1"}, strongFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Antibody Design Score")
	assert.Contains(t, out, "VIABLE")
}

func TestScoreCommand_CIFailsOnGate(t *testing.T) {
	_, err := execute(t, "score", "--ipsae", "0.55", "--ci")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not viable")
}

func TestScoreCommand_CIFailsBelowMin(t *testing.T) {
	_, err := execute(t, append([]string{"score", "--ci", "--min", "99"}, strongFlags...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
}

func TestScoreCommand_CIPasses(t *testing.T) {
	_, err := execute(t, append([]string{"score", "--ci", "--min", "50"}, strongFlags...)...)
	assert.NoError(t, err)
}

func TestScoreCommand_ComplexNeedsChallenge(t *testing.T) {
	_, err := execute(t, "score", "--complex", "model_complex.pdb")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}
