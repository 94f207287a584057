package results

import "errors"

// ErrNotComputed is returned when no curve has been stored for an airfoil.
var ErrNotComputed = errors.New("results: no curve computed for that airfoil")
