package types

import "fmt"

// DataFormatError reports a polar data source that could not be opened or
// parsed. The whole run aborts on the first one: partial output over a subset
// of the configured airfoils would be misleading.
type DataFormatError struct {
	Err    error
	Source string
	Row    int // 1-based row in the source file; 0 when not row-specific
}

func (e *DataFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("polar data %s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("polar data %s: %v", e.Source, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
