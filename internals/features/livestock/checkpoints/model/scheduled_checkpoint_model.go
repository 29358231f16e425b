package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduledCheckpointModel adalah snapshot jadwal per hewan pada saat
// registrasi. Perubahan template belakangan tidak menyentuh baris ini.
// Field completed_at + record_id hanya boleh terisi sekali.
type ScheduledCheckpointModel struct {
	ScheduledCheckpointID          uuid.UUID  `gorm:"column:scheduled_checkpoint_id;type:uuid;primaryKey" json:"scheduled_checkpoint_id"`
	ScheduledCheckpointAnimalID    uuid.UUID  `gorm:"column:scheduled_checkpoint_animal_id;type:uuid;not null;index" json:"scheduled_checkpoint_animal_id"`
	ScheduledCheckpointTemplateID  uuid.UUID  `gorm:"column:scheduled_checkpoint_template_id;type:uuid;not null" json:"scheduled_checkpoint_template_id"`
	ScheduledCheckpointLabel       string     `gorm:"column:scheduled_checkpoint_label" json:"scheduled_checkpoint_label"`
	ScheduledCheckpointDayOffset   int        `gorm:"column:scheduled_checkpoint_day_offset;not null" json:"scheduled_checkpoint_day_offset"`
	ScheduledCheckpointDate        time.Time  `gorm:"column:scheduled_checkpoint_date;type:date;not null" json:"scheduled_checkpoint_date"`
	ScheduledCheckpointCompletedAt *time.Time `gorm:"column:scheduled_checkpoint_completed_at" json:"scheduled_checkpoint_completed_at,omitempty"`
	ScheduledCheckpointRecordID    *uuid.UUID `gorm:"column:scheduled_checkpoint_record_id;type:uuid" json:"scheduled_checkpoint_record_id,omitempty"`
}

func (ScheduledCheckpointModel) TableName() string {
	return "scheduled_checkpoints"
}

func (m *ScheduledCheckpointModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduledCheckpointID == uuid.Nil {
		m.ScheduledCheckpointID = uuid.New()
	}
	return nil
}
