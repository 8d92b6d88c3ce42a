package basinsync

import (
	"fmt"
	"strings"
)

// StatusFieldName derives the dated snapshot field from the run date.
// The date is MM/DD/YYYY optionally followed by a time, e.g. "1/5/2021 12:00:00 AM"
// becomes "Status_20210105". Month and day are zero-padded, the year is used as given.
func StatusFieldName(date string) (string, error) {
	fields := strings.Fields(date)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty date", ErrMalformedDate)
	}

	parts := strings.Split(fields[0], "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q is not MM/DD/YYYY", ErrMalformedDate, date)
	}
	month, day, year := parts[0], parts[1], parts[2]

	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return "Status_" + year + month + day, nil
}
