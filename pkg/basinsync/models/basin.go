// Package models defines the data passed between the scanner, the milestone mapper and the record updater.
package models

// Basin is the value of the Name field of a BasinStudies record.
type Basin string

const (
	// CapeFear is tracked on row 48 of the ESP_2D_Actual sheet.
	CapeFear Basin = "Cape Fear Basin"
	// Cashie is tracked on row 49.
	Cashie Basin = "Cashie Basin"
	// NECapeFear is tracked on row 50.
	NECapeFear Basin = "Northeast Cape Fear Basin"
)

// Basins lists the tracked basins in sheet order.
var Basins = []Basin{CapeFear, Cashie, NECapeFear}

var basinRows = map[int]Basin{
	48: CapeFear,
	49: Cashie,
	50: NECapeFear,
}

// BasinForRow returns the basin tracked on the given 1-based sheet row.
func BasinForRow(row int) (Basin, bool) {
	b, ok := basinRows[row]
	return b, ok
}

// BasinCells is the fixed list of tracking cells on the ESP_2D_Actual sheet.
// The row number of each coordinate selects the basin it counts towards.
var BasinCells = []string{
	"V48", "W48", "X48", "Y48", "AN48", "AO48", "AP48", "AQ48", "AR48", "AS48",
	"AT48", "AU48", "AV48", "AW48", "Z49", "AA49", "AB49", "AC49", "AD49",
	"AE49", "AN49", "AO49", "AP49", "AQ49", "AR49", "AS49", "AT49", "AU49",
	"AV49", "AW49", "AF50", "AG50", "AH50", "AI50", "AJ50", "AK50", "AL50",
	"AM50", "AN50", "AO50", "AP50", "AQ50", "AR50", "AS50", "AT50", "AU50",
	"AV50", "AW50",
}

// BasinCounts maps a basin to the number of non-empty tracking cells found for it.
// The scanner records every basin, with zero when none of its cells are filled.
// Count also reports zero for a key it has never seen.
type BasinCounts map[Basin]int

// Count returns the tally for b.
func (c BasinCounts) Count(b Basin) int {
	return c[b]
}
