package basinsync

import (
	"errors"
	"fmt"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/scanner"
)

// ErrDatasetNotFound indicates the target table is missing from the dataset.
var ErrDatasetNotFound = errors.New("dataset not found")

// ErrSheetNotFound indicates the workbook has no sheet with the required name.
var ErrSheetNotFound = scanner.ErrSheetNotFound

// ErrMalformedDate indicates the run date is not shaped like MM/DD/YYYY.
var ErrMalformedDate = errors.New("malformed date")

// MissingResourceError reports a required table or worksheet that could not be found.
type MissingResourceError struct {
	Kind     string // "table" or "worksheet"
	Name     string
	Location string
	Err      error
}

func (e *MissingResourceError) Error() string {
	if e.Kind == "worksheet" {
		return fmt.Sprintf("could not find the %s worksheet in %s", e.Name, e.Location)
	}
	return fmt.Sprintf("%s does not exist in %s", e.Name, e.Location)
}

func (e *MissingResourceError) Unwrap() error {
	return e.Err
}

func missingTable(name, location string) *MissingResourceError {
	return &MissingResourceError{Kind: "table", Name: name, Location: location, Err: ErrDatasetNotFound}
}

func missingSheet(name, location string, err error) *MissingResourceError {
	return &MissingResourceError{Kind: "worksheet", Name: name, Location: location, Err: err}
}
