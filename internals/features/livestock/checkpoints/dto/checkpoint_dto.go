package dto

import (
	"time"

	"github.com/google/uuid"

	checkpointModel "ternakku_backend/internals/features/livestock/checkpoints/model"
)

/* =========================================================
   Complete Checkpoint Request
========================================================= */

type TreatmentInput struct {
	Name  string `json:"name"`
	Batch string `json:"batch"`
	Dose  string `json:"dose"`
}

type CompleteCheckpointRequest struct {
	CheckDate string           `json:"check_date" validate:"required"` // "2006-01-02"
	WeightKg  float64          `json:"weight_kg" validate:"required,gt=0"`
	Notes     *string          `json:"notes,omitempty"`
	Vaccine   *TreatmentInput  `json:"vaccine,omitempty"`
	Dewormer  *TreatmentInput  `json:"dewormer,omitempty"`
	Medicines []TreatmentInput `json:"medicines,omitempty" validate:"max=5"`
}

/* =========================================================
   Template admin
========================================================= */

type CreateTemplateRequest struct {
	Label     string `json:"label" validate:"required"`
	DayOffset int    `json:"day_offset" validate:"gte=0"`
}

/* =========================================================
   Response DTO
========================================================= */

type ScheduledCheckpointDTO struct {
	CheckpointID  uuid.UUID  `json:"checkpoint_id"`
	TemplateID    uuid.UUID  `json:"template_id"`
	Label         string     `json:"label"`
	DayOffset     int        `json:"day_offset"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	RecordID      *uuid.UUID `json:"record_id,omitempty"`
	DueState      string     `json:"due_state"`
}

func FromScheduledCheckpointModel(m checkpointModel.ScheduledCheckpointModel, dueState string) ScheduledCheckpointDTO {
	return ScheduledCheckpointDTO{
		CheckpointID:  m.ScheduledCheckpointID,
		TemplateID:    m.ScheduledCheckpointTemplateID,
		Label:         m.ScheduledCheckpointLabel,
		DayOffset:     m.ScheduledCheckpointDayOffset,
		ScheduledDate: m.ScheduledCheckpointDate,
		CompletedAt:   m.ScheduledCheckpointCompletedAt,
		RecordID:      m.ScheduledCheckpointRecordID,
		DueState:      dueState,
	}
}
