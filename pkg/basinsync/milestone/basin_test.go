package milestone

import (
	"testing"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/models"
)

func TestForBasinCapeFear(t *testing.T) {
	tests := []struct {
		count     int
		milestone string
		task      string
	}{
		{0, "00", "00"},
		{1, "01", "05"},
		{4, "04", "05"},
		{5, "19", "06"},
		{6, "20", "06"},
		{7, "21", "07"},
		{8, "22", "07"},
		{9, "23", "08"},
		{14, "28", "08"},
		{15, "00", "00"},
		{-1, "00", "00"},
	}

	for _, tt := range tests {
		code := ForBasin(models.CapeFear, tt.count)
		if code.Milestone != tt.milestone || code.TaskNum != tt.task {
			t.Errorf("ForBasin(CapeFear, %d) = (%q, %q), expected (%q, %q)",
				tt.count, code.Milestone, code.TaskNum, tt.milestone, tt.task)
		}
	}
}

func TestForBasinCashie(t *testing.T) {
	tests := []struct {
		count     int
		milestone string
		task      string
	}{
		{0, "00", "00"},
		{1, "05", "05"},
		{5, "09", "05"},
		{6, "10", "05"},
		{7, "19", "06"},
		{8, "20", "06"},
		{9, "21", "07"},
		{10, "22", "07"},
		{11, "23", "08"},
		{16, "28", "08"},
		{17, "00", "00"},
	}

	for _, tt := range tests {
		code := ForBasin(models.Cashie, tt.count)
		if code.Milestone != tt.milestone || code.TaskNum != tt.task {
			t.Errorf("ForBasin(Cashie, %d) = (%q, %q), expected (%q, %q)",
				tt.count, code.Milestone, code.TaskNum, tt.milestone, tt.task)
		}
	}
}

func TestForBasinNECapeFear(t *testing.T) {
	tests := []struct {
		count     int
		milestone string
		task      string
	}{
		{0, "00", "00"},
		{1, "11", "05"},
		{8, "18", "05"},
		{9, "19", "06"},
		{10, "20", "06"},
		{11, "21", "07"},
		{12, "22", "07"},
		{13, "23", "08"},
		{18, "28", "08"},
		{19, "00", "00"},
	}

	for _, tt := range tests {
		code := ForBasin(models.NECapeFear, tt.count)
		if code.Milestone != tt.milestone || code.TaskNum != tt.task {
			t.Errorf("ForBasin(NECapeFear, %d) = (%q, %q), expected (%q, %q)",
				tt.count, code.Milestone, code.TaskNum, tt.milestone, tt.task)
		}
	}
}

func TestForBasinUnknownName(t *testing.T) {
	for _, count := range []int{0, 1, 6, 12} {
		if code := ForBasin("Neuse Basin", count); code != models.DefaultCode {
			t.Errorf("ForBasin(Neuse Basin, %d) = %+v, expected default code", count, code)
		}
	}
}

func TestForBasinSnapshotIsTaskNumber(t *testing.T) {
	code := ForBasin(models.CapeFear, 9)
	if code.Snapshot != "08" {
		t.Errorf("Snapshot = %q, expected %q", code.Snapshot, "08")
	}
}
