package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlaughterModel struct {
	SlaughterID               uuid.UUID `gorm:"column:slaughter_id;type:uuid;primaryKey" json:"slaughter_id"`
	SlaughterAnimalID         uuid.UUID `gorm:"column:slaughter_animal_id;type:uuid;not null;index" json:"slaughter_animal_id"`
	SlaughterDate             time.Time `gorm:"column:slaughter_date;type:date;not null" json:"slaughter_date"`
	SlaughterWeightBefore     float64   `gorm:"column:slaughter_weight_before;type:numeric(10,2)" json:"slaughter_weight_before"`
	SlaughterFinalWeightGain  float64   `gorm:"column:slaughter_final_weight_gain;type:numeric(10,2)" json:"slaughter_final_weight_gain"`
	SlaughterCarcassWeight    float64   `gorm:"column:slaughter_carcass_weight;type:numeric(10,2)" json:"slaughter_carcass_weight"`
	SlaughterCarcassRatio     float64   `gorm:"column:slaughter_carcass_ratio;type:numeric(10,2)" json:"slaughter_carcass_ratio"`
	SlaughterCarcassQuality   string    `gorm:"column:slaughter_carcass_quality" json:"slaughter_carcass_quality"`
	SlaughterQualityNotes     *string   `gorm:"column:slaughter_quality_notes" json:"slaughter_quality_notes,omitempty"`
	SlaughterCustomerFeedback *string   `gorm:"column:slaughter_customer_feedback" json:"slaughter_customer_feedback,omitempty"`
	SlaughterCreatedAt        time.Time `gorm:"column:slaughter_created_at;autoCreateTime" json:"slaughter_created_at"`
}

func (SlaughterModel) TableName() string {
	return "slaughter_records"
}

func (m *SlaughterModel) BeforeCreate(tx *gorm.DB) error {
	if m.SlaughterID == uuid.Nil {
		m.SlaughterID = uuid.New()
	}
	return nil
}
