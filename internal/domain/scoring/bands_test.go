package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearScale_Interpolates(t *testing.T) {
	assert.InDelta(t, 6.0, linearScale(20, 15, 25, 4, 8), 1e-9)
}

func TestLinearScale_DescendingInterval(t *testing.T) {
	// -8 sits halfway between -6 and -10.
	assert.InDelta(t, 2.0, linearScale(-8, -6, -10, 0, 4), 1e-9)
}

func TestLinearScale_ClampsOutside(t *testing.T) {
	assert.Equal(t, 4.0, linearScale(10, 15, 25, 4, 8))
	assert.Equal(t, 8.0, linearScale(30, 15, 25, 4, 8))
}

func TestLinearScale_DegenerateInterval(t *testing.T) {
	assert.Equal(t, 3.0, linearScale(5, 5, 5, 3, 9))
}

func TestCurve_SaturatesAtEnds(t *testing.T) {
	c := curve{{0, 1}, {10, 5}}
	assert.Equal(t, 1.0, c.at(-100))
	assert.Equal(t, 5.0, c.at(100))
}

func TestCurve_Empty(t *testing.T) {
	assert.Equal(t, 0.0, curve{}.at(3))
}

func TestCurves_ContinuousAtKnots(t *testing.T) {
	curves := map[string]curve{
		"energy":     energyCurve,
		"contacts":   contactsCurve,
		"confidence": confidenceCurve,
		"docking":    dockingCurve,
		"residue":    interfaceResidueCurve,
		"paratope":   paratopeCurve,
		"solubility": solubilityCurve,
		"novelty":    noveltyCurve,
	}
	const eps = 1e-9
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			for _, k := range c {
				assert.InDelta(t, k.y, c.at(k.x), 1e-9)
				assert.InDelta(t, c.at(k.x-eps), c.at(k.x+eps), 1e-6)
			}
		})
	}
}

func TestCurves_SortedByRaw(t *testing.T) {
	for _, c := range []curve{energyCurve, contactsCurve, confidenceCurve, dockingCurve,
		interfaceResidueCurve, paratopeCurve, solubilityCurve, noveltyCurve} {
		for i := 1; i < len(c); i++ {
			assert.Less(t, c[i-1].x, c[i].x)
		}
	}
}
