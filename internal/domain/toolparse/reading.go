package toolparse

import (
	"math"
	"sort"

	"github.com/abscore/abscore/internal/domain"
)

// Metric names a raw measurement a parser can produce. The values match
// the raw column names of a result row.
type Metric string

const (
	BindingEnergy       Metric = "binding_energy"
	Contacts            Metric = "contacts"
	DockingQuality      Metric = "docking_quality"
	InterfaceConfidence Metric = "interface_confidence"
	InterfaceResidue    Metric = "interface_residue"
	ParatopeArea        Metric = "paratope_area"
	Solubility          Metric = "solubility"
)

// Reading holds the metrics a parser managed to extract. A metric missing
// from the map is absent.
type Reading map[Metric]float64

// Float returns the metric as an optional float.
func (r Reading) Float(m Metric) *float64 {
	v, ok := r[m]
	if !ok {
		return nil
	}
	return &v
}

// Int returns the metric rounded to an optional int.
func (r Reading) Int(m Metric) *int {
	v, ok := r[m]
	if !ok {
		return nil
	}
	n := int(math.Round(v))
	return &n
}

// Merge copies every metric of other into r, overwriting existing values.
func (r Reading) Merge(other Reading) {
	for k, v := range other {
		r[k] = v
	}
}

// Metrics returns the metrics present, sorted.
func (r Reading) Metrics() []Metric {
	out := make([]Metric, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ApplyTo sets every metric present in the reading on raw. Metrics absent
// from the reading leave raw untouched.
func (r Reading) ApplyTo(raw *domain.RawMetrics) {
	for m := range r {
		switch m {
		case BindingEnergy:
			raw.BindingEnergy = r.Float(m)
		case Contacts:
			raw.Contacts = r.Int(m)
		case DockingQuality:
			raw.DockingQuality = r.Float(m)
		case InterfaceConfidence:
			raw.InterfaceConfidence = r.Float(m)
		case InterfaceResidue:
			raw.InterfaceResidue = r.Float(m)
		case ParatopeArea:
			raw.ParatopeArea = r.Float(m)
		case Solubility:
			raw.Solubility = r.Float(m)
		}
	}
}
