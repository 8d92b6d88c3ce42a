package models

// HUCStatus is the overall status read from the Dashboard Tracking sheet for one HUC.
type HUCStatus struct {
	// Value is the status number. Zero when Present is false.
	Value int
	// Present is false when the status cell was blank.
	Present bool
}

// HUCStatusTable maps a HUC10 code to its status. A later sheet row overwrites an earlier one with the same code.
type HUCStatusTable map[string]HUCStatus

// Lookup returns the status recorded for huc.
func (t HUCStatusTable) Lookup(huc string) (HUCStatus, bool) {
	s, ok := t[huc]
	return s, ok
}
