package scoring

import "github.com/abscore/abscore/internal/domain"

// Category weights of the final score. They sum to 1.0.
const (
	WeightBinding        = 0.60
	WeightDevelopability = 0.20
	WeightNovelty        = 0.20
)

// PerMetric scores every raw metric independently.
func PerMetric(raw domain.RawMetrics) domain.PerMetricScores {
	return domain.PerMetricScores{
		BindingEnergy:       ScoreBindingEnergy(raw.BindingEnergy),
		Contacts:            ScoreContacts(raw.Contacts),
		DockingQuality:      ScoreDockingQuality(raw.DockingQuality),
		InterfaceConfidence: ScoreInterfaceConfidence(raw.InterfaceConfidence),
		InterfaceResidue:    ScoreInterfaceResidue(raw.InterfaceResidue),
		ParatopeArea:        ScoreParatopeArea(raw.ParatopeArea),
		Solubility:          ScoreSolubility(raw.Solubility),
		Novelty:             ScoreNovelty(raw.CDR3Identity),
	}
}

// bindingVector returns the six scores averaged into the binding/structural
// category. Docking quality is only used when it was measured; otherwise the
// interface confidence score stands in for it.
func bindingVector(raw domain.RawMetrics, pm domain.PerMetricScores) [6]float64 {
	dockingOrConfidence := pm.InterfaceConfidence
	if raw.DockingQuality != nil {
		dockingOrConfidence = pm.DockingQuality
	}
	return [6]float64{
		pm.BindingEnergy,
		pm.Contacts,
		pm.InterfaceConfidence,
		dockingOrConfidence,
		pm.InterfaceResidue,
		pm.ParatopeArea,
	}
}

// mean is the plain average of a fixed-size vector. Absent metrics have
// already been folded into 0, so every slot participates.
func mean(values [6]float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Categories rolls per-metric scores up into the judged categories.
func Categories(raw domain.RawMetrics, pm domain.PerMetricScores) domain.CategoryScores {
	return domain.CategoryScores{
		BindingStructural: mean(bindingVector(raw, pm)),
		Developability:    pm.Solubility,
		Novelty:           pm.Novelty,
	}
}

// FinalScore10 weights the category scores into a 0-10 final score.
func FinalScore10(c domain.CategoryScores) float64 {
	return WeightBinding*c.BindingStructural +
		WeightDevelopability*c.Developability +
		WeightNovelty*c.Novelty
}
