package types

// AirfoilSample is one row of a measured airfoil polar: the lift and drag
// coefficients observed at a given angle of attack.
type AirfoilSample struct {
	Alpha float64 // angle of attack, degrees
	Cl    float64 // lift coefficient
	Cd    float64 // drag coefficient
}

// AirfoilDataset is the full polar for one airfoil. Samples are ordered by
// ascending angle of attack and never modified after load.
type AirfoilDataset struct {
	Name    string // display name, e.g. "NACA 2414"
	Source  string // file the samples were read from
	Samples []AirfoilSample
}

// MaxCl returns the largest lift coefficient in the polar, the upper bound on
// the lift demand this airfoil can satisfy.
func (d *AirfoilDataset) MaxCl() float64 {
	var max float64
	for i, s := range d.Samples {
		if i == 0 || s.Cl > max {
			max = s.Cl
		}
	}
	return max
}

// MinCl returns the smallest lift coefficient in the polar.
func (d *AirfoilDataset) MinCl() float64 {
	var min float64
	for i, s := range d.Samples {
		if i == 0 || s.Cl < min {
			min = s.Cl
		}
	}
	return min
}
