package milestone

import (
	"strconv"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/models"
)

// ForHUC returns the code for a HUC status. The milestone and the dated snapshot both
// carry the status padded to two characters; a blank status maps to models.DefaultCode.
func ForHUC(s models.HUCStatus) models.Code {
	if !s.Present {
		return models.DefaultCode
	}
	milestone := PadStatus(s.Value)
	return models.Code{Milestone: milestone, TaskNum: hucTask(s.Value), Snapshot: milestone}
}

// PadStatus prefixes a single-character status with "0". Longer values, including
// negative single digits such as "-3", are returned unchanged.
func PadStatus(v int) string {
	s := strconv.Itoa(v)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func hucTask(s int) string {
	switch {
	case 1 <= s && s <= 5:
		return "01"
	case 6 <= s && s <= 9:
		return "02"
	case 10 <= s && s <= 13:
		return "03"
	case 14 <= s && s <= 17:
		return "04"
	case 18 <= s && s <= 20:
		return "05a"
	case s == 21:
		return "06"
	}
	return "00"
}
