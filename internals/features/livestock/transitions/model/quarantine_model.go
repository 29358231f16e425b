package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuarantineModel struct {
	QuarantineID        uuid.UUID  `gorm:"column:quarantine_id;type:uuid;primaryKey" json:"quarantine_id"`
	QuarantineAnimalID  uuid.UUID  `gorm:"column:quarantine_animal_id;type:uuid;not null;index" json:"quarantine_animal_id"`
	QuarantineReason    string     `gorm:"column:quarantine_reason;not null" json:"quarantine_reason"`
	QuarantineStartDate time.Time  `gorm:"column:quarantine_start_date;type:date;not null" json:"quarantine_start_date"`
	QuarantineEndDate   *time.Time `gorm:"column:quarantine_end_date;type:date" json:"quarantine_end_date,omitempty"`
	QuarantineNotes     *string    `gorm:"column:quarantine_notes" json:"quarantine_notes,omitempty"`
	QuarantineFarm      string     `gorm:"column:quarantine_farm" json:"quarantine_farm"`
	QuarantinePen       string     `gorm:"column:quarantine_pen" json:"quarantine_pen"`
	QuarantineCreatedAt time.Time  `gorm:"column:quarantine_created_at;autoCreateTime" json:"quarantine_created_at"`
}

func (QuarantineModel) TableName() string {
	return "quarantine_animals"
}

func (m *QuarantineModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuarantineID == uuid.Nil {
		m.QuarantineID = uuid.New()
	}
	return nil
}
