package scoring

// Score curves, calibrated against the competition bands. Every curve is
// expressed in ascending raw order; "lower is better" metrics simply carry
// descending scores.
var (
	// Binding energy (kcal/mol): >= -6 worst, -6..-10 poor, -10..-12 medium.
	// Anything at or below -12 saturates at 10, see ScoreBindingEnergy.
	energyCurve = curve{{-12, 8}, {-10, 4}, {-6, 0}}

	// Intermolecular contacts: <= 10 worst, 10..15 poor, 15..25 medium, 25..50 good.
	contactsCurve = curve{{10, 0}, {15, 4}, {25, 8}, {50, 10}}

	// Interface confidence in [0,1].
	confidenceCurve = curve{{0.40, 0}, {0.60, 4}, {0.80, 8}, {1.00, 10}}

	// Docking quality in [0,1], CAPRI bands incorrect/acceptable/medium/high.
	dockingCurve = curve{{0, 0}, {0.23, 3}, {0.49, 5.5}, {0.80, 8.5}, {1.00, 10}}

	// Interface confidence-weighted residue score (pLDDT-like, 0..100).
	interfaceResidueCurve = curve{{65, 0}, {70, 4}, {80, 8}, {100, 10}}

	// Buried paratope surface area (Å²). <= 250 is the fail region.
	paratopeCurve = curve{{250, 0}, {300, 4}, {600, 8}, {1000, 10}}

	// Solubility probability in [0,1].
	solubilityCurve = curve{{0, 0}, {0.30, 2}, {0.50, 4}, {0.70, 8}, {1.00, 10}}

	// CDR3 identity percent; lower is more novel. >= 95 is a copy.
	noveltyCurve = curve{{0, 10}, {70, 8}, {90, 4}, {95, 0}}
)

// energySaturation is the binding energy at or below which the score is 10.
const energySaturation = -12.0

// ScoreBindingEnergy scores a predicted binding free energy. Lower is better.
func ScoreBindingEnergy(dg *float64) float64 {
	if dg == nil {
		return 0
	}
	if *dg <= energySaturation {
		return 10
	}
	return energyCurve.at(*dg)
}

// ScoreContacts scores an intermolecular contact count. Higher is better.
func ScoreContacts(contacts *int) float64 {
	if contacts == nil {
		return 0
	}
	return contactsCurve.at(float64(*contacts))
}

// ScoreInterfaceConfidence scores an interface confidence in [0,1].
func ScoreInterfaceConfidence(conf *float64) float64 {
	if conf == nil {
		return 0
	}
	return confidenceCurve.at(clamp(*conf, 0, 1))
}

// ScoreDockingQuality scores a DockQ-style similarity to the native complex.
func ScoreDockingQuality(dq *float64) float64 {
	if dq == nil {
		return 0
	}
	return dockingCurve.at(clamp(*dq, 0, 1))
}

// ScoreInterfaceResidue scores the mean per-residue confidence at the interface.
func ScoreInterfaceResidue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return interfaceResidueCurve.at(*v)
}

// ScoreParatopeArea scores buried paratope surface area in Å².
func ScoreParatopeArea(area *float64) float64 {
	if area == nil {
		return 0
	}
	return paratopeCurve.at(*area)
}

// ScoreSolubility scores a predicted solubility probability.
func ScoreSolubility(p *float64) float64 {
	if p == nil {
		return 0
	}
	return solubilityCurve.at(clamp(*p, 0, 1))
}

// ScoreNovelty scores CDR3 identity to the closest reference. The scale is
// inverted: a near-identical CDR3 scores 0, an unrelated one scores 10.
func ScoreNovelty(identity *float64) float64 {
	if identity == nil {
		return 0
	}
	return noveltyCurve.at(*identity)
}
