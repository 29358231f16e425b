package service

import (
	"time"

	helper "ternakku_backend/internals/helpers"
)

// Due-state checkpoint untuk tampilan. Dihitung saat query, tidak disimpan.
const (
	DueStateCompleted = "completed"
	DueStateOverdue   = "overdue"
	DueStateDueToday  = "due_today"
	DueStateUpcoming  = "upcoming"
)

// ClassifyDueState mengklasifikasikan satu checkpoint ke tepat satu state.
// Completed selalu menang atas perbandingan tanggal; sisanya perbandingan
// per-kalender-hari terhadap "today".
func ClassifyDueState(completedAt *time.Time, scheduledDate, today time.Time) string {
	if completedAt != nil {
		return DueStateCompleted
	}
	s := helper.DateOnly(scheduledDate)
	t := helper.DateOnly(today)
	switch {
	case s.Before(t):
		return DueStateOverdue
	case s.Equal(t):
		return DueStateDueToday
	default:
		return DueStateUpcoming
	}
}
