package rowwriter_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abscore/abscore/internal/adapters/outbound/rowwriter"
	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredRows() []domain.ResultRow {
	strong := domain.RawMetrics{
		BindingEnergy:       domain.Float(-12.5),
		Contacts:            domain.Int(1234),
		InterfaceConfidence: domain.Float(0.84),
		InterfaceResidue:    domain.Float(82),
		ParatopeArea:        domain.Float(700),
		Solubility:          domain.Float(0.72),
		CDR3Identity:        domain.Float(45),
		IdentityQC:          domain.Bool(true),
	}
	weak := domain.RawMetrics{
		InterfaceConfidence: domain.Float(0.55),
		Solubility:          domain.Float(0.61),
	}
	return []domain.ResultRow{
		domain.NewResultRow(domain.DesignInput{Team: "Alpha", DesignID: "d1", Challenge: "challenge1"}, strong, scoring.ScoreDesign(strong)),
		domain.NewResultRow(domain.DesignInput{Team: "Be|ta", DesignID: "b2", Challenge: "challenge2"}, weak, scoring.ScoreDesign(weak)),
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rowwriter.Write(&buf, rowwriter.FormatCSV, scoredRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.Columns(), records[0])
	assert.Equal(t, "Alpha", records[1][0])

	idx := indexOf(records[0], "binding_energy")
	assert.Equal(t, "-12.5", records[1][idx])
	assert.Equal(t, "", records[2][idx], "absent values are empty cells")
	assert.Equal(t, scoring.ReasonConfidence, records[2][indexOf(records[0], "fail_reason")])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rowwriter.Write(&buf, rowwriter.FormatJSON, scoredRows()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "d1", got[0]["design_id"])
	assert.Nil(t, got[1]["binding_energy"])
	assert.Contains(t, got[1], "binding_energy", "absent values serialise as null")
}

func TestWrite_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rowwriter.Write(&buf, rowwriter.FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_Parquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.parquet")
	rows := scoredRows()
	require.NoError(t, rowwriter.WriteFile(path, rowwriter.FormatParquet, rows))

	got, err := parquet.ReadFile[domain.ResultRow](path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Team)
	require.NotNil(t, got[0].Contacts)
	assert.Equal(t, int64(1234), *got[0].Contacts)
	assert.Nil(t, got[1].BindingEnergy)
	assert.InDelta(t, rows[0].FinalScore100, got[0].FinalScore100, 1e-9)
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rowwriter.Write(&buf, rowwriter.FormatTable, scoredRows()))

	out := buf.String()
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "1,234", "counts use digit grouping")
	assert.Contains(t, out, "viable")
	assert.Contains(t, out, scoring.ReasonConfidence)
	assert.Contains(t, out, "–", "absent values are dashed")
}

func TestWrite_MarkdownAndHTML(t *testing.T) {
	var md bytes.Buffer
	require.NoError(t, rowwriter.Write(&md, rowwriter.FormatMarkdown, scoredRows()))
	assert.Contains(t, md.String(), "# Antibody design leaderboard")
	assert.Contains(t, md.String(), "2 designs scored, 1 viable.")
	assert.Contains(t, md.String(), `Be\|ta`)

	var html bytes.Buffer
	require.NoError(t, rowwriter.Write(&html, rowwriter.FormatHTML, scoredRows()))
	out := html.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Alpha</td>")
	assert.Contains(t, out, "Be|ta")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := rowwriter.Write(&bytes.Buffer{}, "xlsx", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "csv")
}

func TestWriteFile_CreatesDirsAndRefusesTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Alpha_Challenge1", "metrics", "final_scores.csv")
	require.NoError(t, rowwriter.WriteFile(path, rowwriter.FormatCSV, scoredRows()))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	assert.Error(t, rowwriter.WriteFile(filepath.Join(dir, "t.txt"), rowwriter.FormatTable, nil))
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
