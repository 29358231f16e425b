package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckpointTemplateModel mendefinisikan bentuk jadwal universal:
// satu baris per offset hari (Day 0, 3, 7, 21, 50, 75, ...).
// Dikelola admin, read-only untuk mesin penjadwalan.
type CheckpointTemplateModel struct {
	CheckpointTemplateID        uuid.UUID `gorm:"column:checkpoint_template_id;type:uuid;primaryKey" json:"checkpoint_template_id"`
	CheckpointTemplateLabel     string    `gorm:"column:checkpoint_template_label;not null" json:"checkpoint_template_label"`
	CheckpointTemplateDayOffset int       `gorm:"column:checkpoint_template_day_offset;not null" json:"checkpoint_template_day_offset"`
	CheckpointTemplateIsActive  bool      `gorm:"column:checkpoint_template_is_active;not null;default:true" json:"checkpoint_template_is_active"`
	CheckpointTemplateCreatedAt time.Time `gorm:"column:checkpoint_template_created_at;autoCreateTime" json:"checkpoint_template_created_at"`
}

func (CheckpointTemplateModel) TableName() string {
	return "checkpoint_templates"
}

func (m *CheckpointTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CheckpointTemplateID == uuid.Nil {
		m.CheckpointTemplateID = uuid.New()
	}
	return nil
}
