package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightHistoryModel: append-only, satu baris per penimbangan.
// Field turunan (diff, days, adg, overall_adg) dihitung sekali saat insert
// dan tidak pernah dihitung ulang (lihat service growth_metrics).
type WeightHistoryModel struct {
	WeightHistoryID            uuid.UUID `gorm:"column:weight_history_id;type:uuid;primaryKey" json:"weight_history_id"`
	WeightHistoryAnimalID      uuid.UUID `gorm:"column:weight_history_animal_id;type:uuid;not null;index" json:"weight_history_animal_id"`
	WeightHistoryCheckDate     time.Time `gorm:"column:weight_history_check_date;type:date;not null" json:"weight_history_check_date"`
	WeightHistoryWeightKg      float64   `gorm:"column:weight_history_weight_kg;type:numeric(10,2);not null" json:"weight_history_weight_kg"`
	WeightHistoryWeightDiff    *float64  `gorm:"column:weight_history_weight_diff;type:numeric(10,2)" json:"weight_history_weight_diff,omitempty"`
	WeightHistoryDaysSinceLast *int      `gorm:"column:weight_history_days_since_last" json:"weight_history_days_since_last,omitempty"`
	WeightHistoryAdg           *float64  `gorm:"column:weight_history_adg;type:numeric(10,2)" json:"weight_history_adg,omitempty"`
	WeightHistoryOverallAdg    *float64  `gorm:"column:weight_history_overall_adg;type:numeric(10,2)" json:"weight_history_overall_adg,omitempty"`
	WeightHistoryCreatedAt     time.Time `gorm:"column:weight_history_created_at;autoCreateTime" json:"weight_history_created_at"`
}

func (WeightHistoryModel) TableName() string {
	return "animal_weight_history"
}

func (m *WeightHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeightHistoryID == uuid.Nil {
		m.WeightHistoryID = uuid.New()
	}
	return nil
}
