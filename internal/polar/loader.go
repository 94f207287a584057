package polar

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eytandecker/glideperf/pkg/types"
)

// headerRows is the fixed metadata block at the top of every polar export.
const headerRows = 11

// Load reads one airfoil polar from a CSV file. The first 11 rows are
// discarded; every row after that must hold exactly three numeric fields:
// angle of attack (degrees), lift coefficient, drag coefficient.
//
// The interpolation in Lookup assumes alpha ascending and Cl non-decreasing,
// so Load rejects files that violate either with a DataFormatError rather
// than let a wrong bracket slip through.
func Load(name, path string) (*types.AirfoilDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.DataFormatError{Source: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // header rows are free-form

	records, err := r.ReadAll()
	if err != nil {
		return nil, &types.DataFormatError{Source: path, Err: err}
	}
	if len(records) <= headerRows {
		return nil, &types.DataFormatError{Source: path, Err: ErrNoSamples}
	}

	ds := &types.AirfoilDataset{
		Name:    name,
		Source:  path,
		Samples: make([]types.AirfoilSample, 0, len(records)-headerRows),
	}
	for i, rec := range records[headerRows:] {
		row := headerRows + i + 1
		if len(rec) != 3 {
			return nil, &types.DataFormatError{
				Source: path,
				Row:    row,
				Err:    fmt.Errorf("%w: got %d", ErrFieldCount, len(rec)),
			}
		}
		var vals [3]float64
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &types.DataFormatError{
					Source: path,
					Row:    row,
					Err:    fmt.Errorf("field %d: %w", j+1, err),
				}
			}
			vals[j] = v
		}
		ds.Samples = append(ds.Samples, types.AirfoilSample{Alpha: vals[0], Cl: vals[1], Cd: vals[2]})
	}

	if err := validateMonotonic(ds.Samples); err != nil {
		return nil, &types.DataFormatError{Source: path, Err: err}
	}
	return ds, nil
}

// validateMonotonic checks that alpha never decreases and Cl never decreases
// across consecutive samples.
func validateMonotonic(samples []types.AirfoilSample) error {
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if cur.Alpha < prev.Alpha {
			return fmt.Errorf("%w: %g after %g", ErrUnsortedAlpha, cur.Alpha, prev.Alpha)
		}
		if cur.Cl < prev.Cl {
			return fmt.Errorf("%w: %g at alpha %g after %g", ErrDecreasingCl, cur.Cl, cur.Alpha, prev.Cl)
		}
	}
	return nil
}
