package domain

// DesignInput identifies one submitted design and the files the external
// tools consume. Challenge selects the reference panel and native complex.
type DesignInput struct {
	Team          string `json:"team"`
	DesignID      string `json:"design_id"`
	Challenge     string `json:"challenge"`
	ComplexPDB    string `json:"complex_pdb,omitempty"`
	PAEJSON       string `json:"pae_json,omitempty"`
	FASTA         string `json:"fasta,omitempty"`
	NativeComplex string `json:"native_complex,omitempty"`

	// Dir is the challenge submission directory the design was found in.
	Dir string `json:"dir,omitempty"`
}

// MeasuredDesign pairs a design with the raw metrics measured for it.
type MeasuredDesign struct {
	Design DesignInput `json:"design"`
	Raw    RawMetrics  `json:"raw"`
}

// RawMetrics holds the measurements reported for one design.
// A nil field means the value was never produced; it is not the same as zero.
type RawMetrics struct {
	// Binding and interface
	BindingEnergy       *float64 `json:"binding_energy"`
	Contacts            *int     `json:"contacts"`
	DockingQuality      *float64 `json:"docking_quality"`
	InterfaceResidue    *float64 `json:"interface_residue"`
	InterfaceConfidence *float64 `json:"interface_confidence"`
	ParatopeArea        *float64 `json:"paratope_area"`

	// Developability
	Solubility *float64 `json:"solubility"`

	// Novelty
	CDR3Identity *float64 `json:"cdr3_identity"`
	IdentityQC   *bool    `json:"identity_qc"`
}

// PerMetricScores holds one 0-10 score per raw metric.
type PerMetricScores struct {
	BindingEnergy       float64 `json:"binding_energy_score"`
	Contacts            float64 `json:"contacts_score"`
	DockingQuality      float64 `json:"docking_quality_score"`
	InterfaceConfidence float64 `json:"interface_confidence_score"`
	InterfaceResidue    float64 `json:"interface_residue_score"`
	ParatopeArea        float64 `json:"paratope_area_score"`
	Solubility          float64 `json:"solubility_score"`
	Novelty             float64 `json:"novelty_score"`
}

// CategoryScores rolls per-metric scores up into the three judged categories.
type CategoryScores struct {
	BindingStructural float64 `json:"binding_structural_score"`
	Developability    float64 `json:"developability_score"`
	Novelty           float64 `json:"novelty_category_score"`
}

// FinalScores is the derived, immutable outcome of scoring one RawMetrics.
type FinalScores struct {
	PerMetric     PerMetricScores `json:"per_metric"`
	Category      CategoryScores  `json:"category"`
	FinalScore10  float64         `json:"final_score_10"`
	FinalScore100 float64         `json:"final_score_100"`
	IsViable      bool            `json:"is_viable"`
	FailReason    *string         `json:"fail_reason"`
}

// Float returns a pointer to v. Used to build optional metrics.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Present reports how many raw metrics carry a value.
func (r RawMetrics) Present() int {
	n := 0
	for _, f := range []*float64{
		r.BindingEnergy, r.DockingQuality, r.InterfaceResidue,
		r.InterfaceConfidence, r.ParatopeArea, r.Solubility, r.CDR3Identity,
	} {
		if f != nil {
			n++
		}
	}
	if r.Contacts != nil {
		n++
	}
	return n
}
