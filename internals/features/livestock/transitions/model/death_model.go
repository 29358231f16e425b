package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeathModel: lokasi (farm/pen) didenormalisasi dari posisi hewan
// pada saat kematian dicatat.
type DeathModel struct {
	DeathID           uuid.UUID `gorm:"column:death_id;type:uuid;primaryKey" json:"death_id"`
	DeathAnimalID     uuid.UUID `gorm:"column:death_animal_id;type:uuid;not null;index" json:"death_animal_id"`
	DeathCause        string    `gorm:"column:death_cause;not null" json:"death_cause"`
	DeathCauseOfDeath string    `gorm:"column:death_cause_of_death" json:"death_cause_of_death"`
	DeathDate         time.Time `gorm:"column:death_date;type:date;not null" json:"death_date"`
	DeathFarm         string    `gorm:"column:death_farm" json:"death_farm"`
	DeathPen          string    `gorm:"column:death_pen" json:"death_pen"`
	DeathCreatedAt    time.Time `gorm:"column:death_created_at;autoCreateTime" json:"death_created_at"`
}

func (DeathModel) TableName() string {
	return "death_records"
}

func (m *DeathModel) BeforeCreate(tx *gorm.DB) error {
	if m.DeathID == uuid.Nil {
		m.DeathID = uuid.New()
	}
	return nil
}
