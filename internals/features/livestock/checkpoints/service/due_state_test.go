package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyDueState(t *testing.T) {
	today := date(2024, 3, 15)
	done := date(2024, 3, 10)

	cases := []struct {
		name        string
		completedAt *time.Time
		scheduled   time.Time
		want        string
	}{
		{"lewat jadwal", nil, date(2024, 3, 1), DueStateOverdue},
		{"hari ini", nil, date(2024, 3, 15), DueStateDueToday},
		{"mendatang", nil, date(2024, 4, 1), DueStateUpcoming},
		{"selesai menang atas overdue", &done, date(2024, 3, 1), DueStateCompleted},
		{"selesai menang atas hari ini", &done, date(2024, 3, 15), DueStateCompleted},
		{"selesai menang atas mendatang", &done, date(2024, 4, 1), DueStateCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyDueState(tc.completedAt, tc.scheduled, today)
			if got != tc.want {
				t.Fatalf("ClassifyDueState = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassifyDueStateIgnoresTimeOfDay(t *testing.T) {
	// jadwal jam 23:00 vs "today" jam 01:00 tetap due_today
	scheduled := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	if got := ClassifyDueState(nil, scheduled, today); got != DueStateDueToday {
		t.Fatalf("ClassifyDueState = %q, want %q", got, DueStateDueToday)
	}
}

func TestClassifyDueStateIdempotent(t *testing.T) {
	today := date(2024, 3, 15)
	scheduled := date(2024, 3, 20)
	first := ClassifyDueState(nil, scheduled, today)
	second := ClassifyDueState(nil, scheduled, today)
	if first != second {
		t.Fatalf("klasifikasi tidak deterministik: %q vs %q", first, second)
	}
}
