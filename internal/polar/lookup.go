package polar

import "github.com/eytandecker/glideperf/pkg/types"

// Lookup finds the operating point that produces targetCl on the given polar.
// Among the samples whose Cl meets or exceeds targetCl it selects the one
// with the smallest angle of attack, then linearly interpolates angle and Cd
// between that sample and its predecessor.
//
// ok is false when no sample reaches targetCl: the airfoil cannot generate
// the required lift at any tabulated angle. When the qualifying sample is the
// first row there is no lower bracket; the row's own values are returned
// unmodified as the closest available approximation.
func Lookup(samples []types.AirfoilSample, targetCl float64) (alpha, cd float64, ok bool) {
	best := -1
	for i, s := range samples {
		if s.Cl < targetCl {
			continue
		}
		if best < 0 || s.Alpha < samples[best].Alpha {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	if best == 0 {
		return samples[0].Alpha, samples[0].Cd, true
	}

	lo, hi := samples[best-1], samples[best]
	// On a table that passed Load's monotonicity check, lo cannot qualify,
	// so lo.Cl < targetCl <= hi.Cl and t stays in (0, 1]. Unsorted tables
	// can put t outside that range; no clamping is applied.
	t := (targetCl - lo.Cl) / (hi.Cl - lo.Cl)
	alpha = lo.Alpha + t*(hi.Alpha-lo.Alpha)
	cd = lo.Cd + t*(hi.Cd-lo.Cd)
	return alpha, cd, true
}
