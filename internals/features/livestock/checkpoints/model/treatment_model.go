package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TreatmentCategoryVaccine  = "vaccine"
	TreatmentCategoryDewormer = "dewormer"
	TreatmentCategoryMedicine = "medicine"
)

type TreatmentModel struct {
	TreatmentID       uuid.UUID `gorm:"column:treatment_id;type:uuid;primaryKey" json:"treatment_id"`
	TreatmentRecordID uuid.UUID `gorm:"column:treatment_record_id;type:uuid;not null;index" json:"treatment_record_id"`
	TreatmentCategory string    `gorm:"column:treatment_category;not null" json:"treatment_category"`
	TreatmentName     string    `gorm:"column:treatment_name;not null" json:"treatment_name"`
	TreatmentBatch    string    `gorm:"column:treatment_batch" json:"treatment_batch"`
	TreatmentDose     string    `gorm:"column:treatment_dose" json:"treatment_dose"`
}

func (TreatmentModel) TableName() string {
	return "treatments"
}

func (m *TreatmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.TreatmentID == uuid.Nil {
		m.TreatmentID = uuid.New()
	}
	return nil
}
