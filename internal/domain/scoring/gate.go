package scoring

import "github.com/abscore/abscore/internal/domain"

// Hard viability cutoffs.
const (
	MinInterfaceConfidence = 0.60
	MinSolubility          = 0.50
	MaxBindingEnergy       = -6.0
	MinParatopeArea        = 250.0
	MaxCDR3Identity        = 95.0
)

// Fail reasons reported by Gate.
const (
	ReasonConfidence = "confidence below threshold"
	ReasonSolubility = "solubility below threshold"
	ReasonEnergy     = "binding energy too weak"
	ReasonParatope   = "insufficient paratope burial"
	ReasonIdentity   = "not sufficiently novel (near-identical to reference)"
)

// gateRule disqualifies a design when fails returns true. Absent metrics
// never fail a rule.
type gateRule struct {
	reason string
	fails  func(domain.RawMetrics) bool
}

// gateRules are evaluated in order; only the first failure is reported.
var gateRules = []gateRule{
	{ReasonConfidence, func(r domain.RawMetrics) bool {
		return r.InterfaceConfidence != nil && *r.InterfaceConfidence < MinInterfaceConfidence
	}},
	{ReasonSolubility, func(r domain.RawMetrics) bool {
		return r.Solubility != nil && *r.Solubility < MinSolubility
	}},
	{ReasonEnergy, func(r domain.RawMetrics) bool {
		return r.BindingEnergy != nil && *r.BindingEnergy > MaxBindingEnergy
	}},
	{ReasonParatope, func(r domain.RawMetrics) bool {
		return r.ParatopeArea != nil && *r.ParatopeArea <= MinParatopeArea
	}},
	{ReasonIdentity, func(r domain.RawMetrics) bool {
		return r.CDR3Identity != nil && *r.CDR3Identity >= MaxCDR3Identity
	}},
}

// Gate applies the hard cutoffs independently of the continuous score.
// It returns the first triggered reason, or ok=true when none trigger.
func Gate(raw domain.RawMetrics) (ok bool, reason string) {
	for _, rule := range gateRules {
		if rule.fails(raw) {
			return false, rule.reason
		}
	}
	return true, ""
}
