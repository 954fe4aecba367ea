package domain

import "fmt"

// QualityAudit collects the data-quality counts surfaced by one run.
// The baseline behavior counts and reports; it never drops or repairs rows.
// Callers decide whether nonzero counts halt the run (strict mode) or merely
// land in the report's audit section.
type QualityAudit struct {
	RowsLoaded        int
	DuplicateRows     int
	UnmappedPropCodes int
	UnmappedCropCodes int
	IncompleteRows    int
}

// Clean reports whether every data-quality count is zero.
func (a QualityAudit) Clean() bool {
	return a.DuplicateRows == 0 &&
		a.UnmappedPropCodes == 0 &&
		a.UnmappedCropCodes == 0 &&
		a.IncompleteRows == 0
}

// Err returns a descriptive error when any count is nonzero, nil otherwise.
func (a QualityAudit) Err() error {
	if a.Clean() {
		return nil
	}
	return fmt.Errorf(
		"data-quality findings: %d duplicate rows, %d unmapped property codes, %d unmapped crop codes, %d incomplete rows",
		a.DuplicateRows, a.UnmappedPropCodes, a.UnmappedCropCodes, a.IncompleteRows,
	)
}
