package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/abscore/abscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProdigy prints a PRODIGY-style report for whatever complex it is given.
const fakeProdigyConfig = `tools:
  prodigy:
    command: /bin/sh
    args: ["-c", "echo '[++] No. of intermolecular contacts: 30'; echo '[++] Predicted binding affinity (kcal.mol-1): -13.0'", "{complex}"]
    required: true
  ipsae: ~
  dockq: ~
  netsolp: ~
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// submissionsRoot lays out one team with one challenge-1 design.
func submissionsRoot(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools need /bin/sh")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".abscore.yaml"), fakeProdigyConfig)

	ch := filepath.Join(root, "TeamA", "TeamA_Challenge1")
	writeFile(t, filepath.Join(ch, "structures", "d1_complex.pdb"), "ATOM\n")
	writeFile(t, filepath.Join(ch, "structures", "d1_pae.json"), "{}\n")
	writeFile(t, filepath.Join(ch, "sequences", "d1.fasta"),
		">H heavy\n"+heavy+"\n>L light\nDIQMTQSPSSLSASVGDRVTITC\n>A antigen\nMKTAYIAKQRQISFVKSHFSRQ\n")
	return root
}

func TestRunCommand_WritesOutputs(t *testing.T) {
	root := submissionsRoot(t)

	out, err := execute(t, "run", root, "--table=false", "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "Scored 1 designs")

	perChallenge, err := os.ReadFile(filepath.Join(root, "TeamA", "TeamA_Challenge1", "metrics", "final_scores.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(perChallenge)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "TeamA,d1,challenge1,-13,30,"))

	_, err = os.Stat(filepath.Join(root, "all_teams_scores.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, ".abscore", "history.db"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunCommand_JSONReportAndHistory(t *testing.T) {
	root := submissionsRoot(t)

	out, err := execute(t, "run", root, "--json", "--format", "parquet")
	require.NoError(t, err)

	var report struct {
		Summary domain.RunSummary  `json:"summary"`
		Rows    []domain.ResultRow `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	require.NotNil(t, row.BindingEnergy)
	assert.Equal(t, -13.0, *row.BindingEnergy)
	require.NotNil(t, row.ParatopeArea)
	assert.Equal(t, 30*domain.DefaultAreaPerContact, *row.ParatopeArea)
	require.NotNil(t, row.CDR3Identity)
	assert.Equal(t, 100.0, *row.CDR3Identity)
	assert.False(t, row.IsViable)
	assert.Positive(t, report.Summary.ID)

	_, err = os.Stat(filepath.Join(root, "all_teams_scores.parquet"))
	assert.NoError(t, err)

	hist, err := execute(t, "history", root, "--json")
	require.NoError(t, err)
	var runs []domain.RunSummary
	require.NoError(t, json.Unmarshal([]byte(hist), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Designs)
}

func TestRunCommand_RequiredToolMissing(t *testing.T) {
	root := submissionsRoot(t)
	writeFile(t, filepath.Join(root, ".abscore.yaml"),
		"tools:\n  prodigy:\n    command: definitely-not-installed-xyz\n    required: true\n")

	_, err := execute(t, "run", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abscore tools")
}

func TestRunCommand_NoDesigns(t *testing.T) {
	root := t.TempDir()
	_, err := execute(t, "run", root, "--skip-preflight", "--no-history")
	assert.Error(t, err)
}
