// Package milestone maps scanned tallies and statuses to Milestone / Task_Num codes.
package milestone

import (
	"strconv"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/models"
)

// ForBasin returns the code for a basin given the number of filled tracking cells.
// Unknown basins and counts outside every range get models.DefaultCode.
//
// Only the single-digit ranges (Cape Fear 1-4, Cashie 1-5) are zero-padded. Sums are
// rendered as plain decimals, so the Cashie count of 6 yields "10".
func ForBasin(b models.Basin, count int) models.Code {
	var milestone, task string
	switch b {
	case models.CapeFear:
		milestone, task = capeFear(count)
	case models.Cashie:
		milestone, task = cashie(count)
	case models.NECapeFear:
		milestone, task = neCapeFear(count)
	}
	if task == "" {
		return models.DefaultCode
	}
	// The dated column records the task number for basins.
	return models.Code{Milestone: milestone, TaskNum: task, Snapshot: task}
}

func capeFear(c int) (string, string) {
	switch {
	case 1 <= c && c <= 4:
		return "0" + strconv.Itoa(c), "05"
	case c == 5 || c == 6:
		return strconv.Itoa(c + 14), "06"
	case c == 7 || c == 8:
		return strconv.Itoa(c + 14), "07"
	case 9 <= c && c <= 14:
		return strconv.Itoa(c + 14), "08"
	}
	return "", ""
}

func cashie(c int) (string, string) {
	switch {
	case 1 <= c && c <= 5:
		return "0" + strconv.Itoa(c+4), "05"
	case c == 6:
		return strconv.Itoa(c + 4), "05"
	case c == 7 || c == 8:
		return strconv.Itoa(c + 12), "06"
	case c == 9 || c == 10:
		return strconv.Itoa(c + 12), "07"
	case 11 <= c && c <= 16:
		return strconv.Itoa(c + 12), "08"
	}
	return "", ""
}

func neCapeFear(c int) (string, string) {
	switch {
	case 1 <= c && c <= 8:
		return strconv.Itoa(c + 10), "05"
	case c == 9 || c == 10:
		return strconv.Itoa(c + 10), "06"
	case c == 11 || c == 12:
		return strconv.Itoa(c + 10), "07"
	case 13 <= c && c <= 18:
		return strconv.Itoa(c + 10), "08"
	}
	return "", ""
}
