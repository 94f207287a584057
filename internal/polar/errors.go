package polar

import "errors"

var (
	ErrFieldCount     = errors.New("polar: data row does not have exactly 3 fields")
	ErrNoSamples      = errors.New("polar: no data rows after header")
	ErrUnsortedAlpha  = errors.New("polar: angle of attack not in ascending order")
	ErrDecreasingCl   = errors.New("polar: lift coefficient decreases with angle of attack")
	ErrUnknownAirfoil = errors.New("polar: unknown airfoil")
)
