package domain

import (
	"strconv"
	"time"
)

// ResultRow is the flat per-design record consumed by the CSV, JSON and
// Parquet writers. Column order follows Columns.
type ResultRow struct {
	Team      string `json:"team_name"  parquet:"team_name"`
	DesignID  string `json:"design_id"  parquet:"design_id"`
	Challenge string `json:"challenge"  parquet:"challenge"`

	BindingEnergy       *float64 `json:"binding_energy"          parquet:"binding_energy,optional"`
	Contacts            *int64   `json:"contacts"                parquet:"contacts,optional"`
	DockingQuality      *float64 `json:"docking_quality"         parquet:"docking_quality,optional"`
	InterfaceResidue    *float64 `json:"interface_residue"       parquet:"interface_residue,optional"`
	InterfaceConfidence *float64 `json:"interface_confidence"    parquet:"interface_confidence,optional"`
	ParatopeArea        *float64 `json:"paratope_area"           parquet:"paratope_area,optional"`
	Solubility          *float64 `json:"solubility"              parquet:"solubility,optional"`
	CDR3Identity        *float64 `json:"cdr3_identity"           parquet:"cdr3_identity,optional"`
	IdentityQC          *bool    `json:"identity_qc"             parquet:"identity_qc,optional"`

	BindingEnergyScore       float64 `json:"binding_energy_score"        parquet:"binding_energy_score"`
	ContactsScore            float64 `json:"contacts_score"              parquet:"contacts_score"`
	DockingQualityScore      float64 `json:"docking_quality_score"       parquet:"docking_quality_score"`
	InterfaceConfidenceScore float64 `json:"interface_confidence_score"  parquet:"interface_confidence_score"`
	InterfaceResidueScore    float64 `json:"interface_residue_score"     parquet:"interface_residue_score"`
	ParatopeAreaScore        float64 `json:"paratope_area_score"         parquet:"paratope_area_score"`
	SolubilityScore          float64 `json:"solubility_score"            parquet:"solubility_score"`
	NoveltyScore             float64 `json:"novelty_score"               parquet:"novelty_score"`

	BindingStructuralScore float64 `json:"binding_structural_score" parquet:"binding_structural_score"`
	DevelopabilityScore    float64 `json:"developability_score"     parquet:"developability_score"`
	NoveltyCategoryScore   float64 `json:"novelty_category_score"   parquet:"novelty_category_score"`

	FinalScore10  float64 `json:"final_score_10"  parquet:"final_score_10"`
	FinalScore100 float64 `json:"final_score_100" parquet:"final_score_100"`
	IsViable      bool    `json:"is_viable"       parquet:"is_viable"`
	FailReason    *string `json:"fail_reason"     parquet:"fail_reason,optional"`
}

// NewResultRow flattens a design, its raw metrics and its scores.
func NewResultRow(design DesignInput, raw RawMetrics, scores FinalScores) ResultRow {
	row := ResultRow{
		Team:                design.Team,
		DesignID:            design.DesignID,
		Challenge:           design.Challenge,
		BindingEnergy:       raw.BindingEnergy,
		DockingQuality:      raw.DockingQuality,
		InterfaceResidue:    raw.InterfaceResidue,
		InterfaceConfidence: raw.InterfaceConfidence,
		ParatopeArea:        raw.ParatopeArea,
		Solubility:          raw.Solubility,
		CDR3Identity:        raw.CDR3Identity,
		IdentityQC:          raw.IdentityQC,

		BindingEnergyScore:       scores.PerMetric.BindingEnergy,
		ContactsScore:            scores.PerMetric.Contacts,
		DockingQualityScore:      scores.PerMetric.DockingQuality,
		InterfaceConfidenceScore: scores.PerMetric.InterfaceConfidence,
		InterfaceResidueScore:    scores.PerMetric.InterfaceResidue,
		ParatopeAreaScore:        scores.PerMetric.ParatopeArea,
		SolubilityScore:          scores.PerMetric.Solubility,
		NoveltyScore:             scores.PerMetric.Novelty,

		BindingStructuralScore: scores.Category.BindingStructural,
		DevelopabilityScore:    scores.Category.Developability,
		NoveltyCategoryScore:   scores.Category.Novelty,

		FinalScore10:  scores.FinalScore10,
		FinalScore100: scores.FinalScore100,
		IsViable:      scores.IsViable,
		FailReason:    scores.FailReason,
	}
	if raw.Contacts != nil {
		c := int64(*raw.Contacts)
		row.Contacts = &c
	}
	return row
}

// Raw rebuilds the RawMetrics carried by the row.
func (r ResultRow) Raw() RawMetrics {
	raw := RawMetrics{
		BindingEnergy:       r.BindingEnergy,
		DockingQuality:      r.DockingQuality,
		InterfaceResidue:    r.InterfaceResidue,
		InterfaceConfidence: r.InterfaceConfidence,
		ParatopeArea:        r.ParatopeArea,
		Solubility:          r.Solubility,
		CDR3Identity:        r.CDR3Identity,
		IdentityQC:          r.IdentityQC,
	}
	if r.Contacts != nil {
		raw.Contacts = Int(int(*r.Contacts))
	}
	return raw
}

var rowColumns = []string{
	"team_name", "design_id", "challenge",
	"binding_energy", "contacts", "docking_quality", "interface_residue",
	"interface_confidence", "paratope_area", "solubility", "cdr3_identity", "identity_qc",
	"binding_energy_score", "contacts_score", "docking_quality_score",
	"interface_confidence_score", "interface_residue_score", "paratope_area_score",
	"solubility_score", "novelty_score",
	"binding_structural_score", "developability_score", "novelty_category_score",
	"final_score_10", "final_score_100", "is_viable", "fail_reason",
}

// Columns returns the ordered column names of a ResultRow.
func Columns() []string {
	out := make([]string, len(rowColumns))
	copy(out, rowColumns)
	return out
}

// Values renders the row in Columns order. Absent values become empty cells.
func (r ResultRow) Values() []string {
	vals := []string{
		r.Team, r.DesignID, r.Challenge,
		optFloat(r.BindingEnergy), optInt(r.Contacts), optFloat(r.DockingQuality),
		optFloat(r.InterfaceResidue), optFloat(r.InterfaceConfidence),
		optFloat(r.ParatopeArea), optFloat(r.Solubility), optFloat(r.CDR3Identity), optBool(r.IdentityQC),
		fmtFloat(r.BindingEnergyScore), fmtFloat(r.ContactsScore), fmtFloat(r.DockingQualityScore),
		fmtFloat(r.InterfaceConfidenceScore), fmtFloat(r.InterfaceResidueScore), fmtFloat(r.ParatopeAreaScore),
		fmtFloat(r.SolubilityScore), fmtFloat(r.NoveltyScore),
		fmtFloat(r.BindingStructuralScore), fmtFloat(r.DevelopabilityScore), fmtFloat(r.NoveltyCategoryScore),
		fmtFloat(r.FinalScore10), fmtFloat(r.FinalScore100), strconv.FormatBool(r.IsViable),
		"",
	}
	if r.FailReason != nil {
		vals[len(vals)-1] = *r.FailReason
	}
	return vals
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmtFloat(*v)
}

func optInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

// RunSummary describes one batch run, persisted by the history store.
type RunSummary struct {
	ID         int64     `json:"id"         db:"id"`
	StartedAt  time.Time `json:"started_at" db:"started_at"`
	Root       string    `json:"root"       db:"root"`
	CommitHash string    `json:"commit_hash,omitempty" db:"commit_hash"`
	Designs    int       `json:"designs"    db:"designs"`
	Viable     int       `json:"viable"     db:"viable"`
	BestTeam   string    `json:"best_team"  db:"best_team"`
	BestDesign string    `json:"best_design" db:"best_design"`
	BestScore  float64   `json:"best_score" db:"best_score"`
}
