package rowwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/abscore/abscore/internal/domain"
)

// CSVSource implements domain.MetricsSource over a raw-metrics CSV. The
// header must name team_name and design_id; every other recognised column
// is optional, and an empty cell is an absent value.
type CSVSource struct{}

// NewCSVSource creates a CSVSource.
func NewCSVSource() *CSVSource { return &CSVSource{} }

// columnAliases maps accepted header names onto RawMetrics fields. The short
// names are those written by the tool-level exports.
var columnAliases = map[string]string{
	"binding_energy":       "binding_energy",
	"delta_g":              "binding_energy",
	"contacts":             "contacts",
	"docking_quality":      "docking_quality",
	"dockq":                "docking_quality",
	"interface_residue":    "interface_residue",
	"iface_plddt":          "interface_residue",
	"interface_confidence": "interface_confidence",
	"ipsae":                "interface_confidence",
	"paratope_area":        "paratope_area",
	"cdr_sasa":             "paratope_area",
	"solubility":           "solubility",
	"netsolp":              "solubility",
	"cdr3_identity":        "cdr3_identity",
	"identity_qc":          "identity_qc",
	"anarci_pass":          "identity_qc",
}

func (CSVSource) ReadMetrics(path string) ([]domain.MeasuredDesign, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMetricsCSV(f)
}

// ReadMetricsCSV parses raw-metric rows from r.
func ReadMetricsCSV(r io.Reader) ([]domain.MeasuredDesign, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty metrics csv", domain.ErrMissingInput)
		}
		return nil, err
	}
	cols := map[string]int{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if field, ok := columnAliases[name]; ok {
			if _, seen := cols[field]; !seen {
				cols[field] = i
			}
			continue
		}
		cols[name] = i
	}
	for _, required := range []string{"team_name", "design_id"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: metrics csv has no %s column", domain.ErrMissingInput, required)
		}
	}

	var out []domain.MeasuredDesign
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, err
		}
		m, err := parseRecord(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func parseRecord(rec []string, cols map[string]int) (domain.MeasuredDesign, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	m := domain.MeasuredDesign{
		Design: domain.DesignInput{
			Team:      cell("team_name"),
			DesignID:  cell("design_id"),
			Challenge: strings.ToLower(cell("challenge")),
		},
	}

	var err error
	floats := []struct {
		name string
		dst  **float64
	}{
		{"binding_energy", &m.Raw.BindingEnergy},
		{"docking_quality", &m.Raw.DockingQuality},
		{"interface_residue", &m.Raw.InterfaceResidue},
		{"interface_confidence", &m.Raw.InterfaceConfidence},
		{"paratope_area", &m.Raw.ParatopeArea},
		{"solubility", &m.Raw.Solubility},
		{"cdr3_identity", &m.Raw.CDR3Identity},
	}
	for _, f := range floats {
		if *f.dst, err = optFloat(cell(f.name)); err != nil {
			return m, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if m.Raw.Contacts, err = optInt(cell("contacts")); err != nil {
		return m, fmt.Errorf("contacts: %w", err)
	}
	if m.Raw.IdentityQC, err = optBool(cell("identity_qc")); err != nil {
		return m, fmt.Errorf("identity_qc: %w", err)
	}
	return m, nil
}

// isMissing reports cells that spreadsheet exports use for no value.
func isMissing(s string) bool {
	switch strings.ToLower(s) {
	case "", "nan", "na", "n/a", "null", "none":
		return true
	}
	return false
}

func optFloat(s string) (*float64, error) {
	if isMissing(s) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsInf(v, 0) {
		return nil, fmt.Errorf("value %q is not finite", s)
	}
	return &v, nil
}

// optInt accepts integral floats such as "31.0", which spreadsheet exports
// produce for integer columns with gaps.
func optInt(s string) (*int, error) {
	v, err := optFloat(s)
	if err != nil || v == nil {
		return nil, err
	}
	if *v != math.Trunc(*v) {
		return nil, fmt.Errorf("value %q is not an integer", s)
	}
	n := int(*v)
	return &n, nil
}

func optBool(s string) (*bool, error) {
	if isMissing(s) {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
