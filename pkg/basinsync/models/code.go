package models

// Code holds the values written back to a record.
type Code struct {
	// Milestone is written to the Milestone field.
	Milestone string
	// TaskNum is written to the Task_Num field.
	TaskNum string
	// Snapshot is written to the dated Status_YYYYMMDD field.
	Snapshot string
}

// DefaultCode is used for counts and statuses outside every known range.
var DefaultCode = Code{Milestone: "00", TaskNum: "00", Snapshot: "00"}
