package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckpointRecordModel: hasil pemeriksaan satu checkpoint.
// Immutable setelah dibuat (tidak ada path update/delete).
type CheckpointRecordModel struct {
	CheckpointRecordID           uuid.UUID `gorm:"column:checkpoint_record_id;type:uuid;primaryKey" json:"checkpoint_record_id"`
	CheckpointRecordCheckpointID uuid.UUID `gorm:"column:checkpoint_record_checkpoint_id;type:uuid;not null;index" json:"checkpoint_record_checkpoint_id"`
	CheckpointRecordAnimalID     uuid.UUID `gorm:"column:checkpoint_record_animal_id;type:uuid;not null;index" json:"checkpoint_record_animal_id"`
	CheckpointRecordCheckDate    time.Time `gorm:"column:checkpoint_record_check_date;type:date;not null" json:"checkpoint_record_check_date"`
	CheckpointRecordWeightKg     float64   `gorm:"column:checkpoint_record_weight_kg;type:numeric(10,2);not null" json:"checkpoint_record_weight_kg"`
	CheckpointRecordNotes        *string   `gorm:"column:checkpoint_record_notes" json:"checkpoint_record_notes,omitempty"`
	CheckpointRecordCreatedAt    time.Time `gorm:"column:checkpoint_record_created_at;autoCreateTime" json:"checkpoint_record_created_at"`
}

func (CheckpointRecordModel) TableName() string {
	return "checkpoint_records"
}

func (m *CheckpointRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.CheckpointRecordID == uuid.Nil {
		m.CheckpointRecordID = uuid.New()
	}
	return nil
}
