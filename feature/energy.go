package feature

import "math"

// Energy returns the per-frame energy of the windowed source and its
// natural logarithm, in frame order.
//
// Energy is the plain sum of squared windowed samples. All-zero frames have
// zero energy and a log energy of negative infinity. Both vectors are
// cached together against the windowing provenance, so repeated calls with
// unchanged parameters return the same slices.
func (e *Extractor) Energy(opts ...WindowOption) (energy, logEnergy []float64, err error) {
	if err := e.checkSource(); err != nil {
		return nil, nil, err
	}

	windowed, err := e.Window(opts...)
	if err != nil {
		return nil, nil, err
	}

	prov := e.windowCache.prov
	if m := e.energyCache; m != nil && m.prov == prov {
		return m.energy, m.logEnergy, nil
	}

	energy = make([]float64, len(windowed))
	logEnergy = make([]float64, len(windowed))

	for i, row := range windowed {
		sum := 0.0
		for _, v := range row {
			sum += v * v
		}

		energy[i] = sum
		logEnergy[i] = math.Log(sum)
	}

	e.energyCache = &energyMemo{prov: prov, energy: energy, logEnergy: logEnergy}

	return energy, logEnergy, nil
}
