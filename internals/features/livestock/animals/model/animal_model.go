package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status hewan. Karantina/potong/mati semuanya berakhir di Inactive;
// pembeda detailnya ada di status_history (change_reason + reference_id).
const (
	AnimalStatusActive   = "Active"
	AnimalStatusInactive = "Inactive"
)

type AnimalModel struct {
	AnimalID           uuid.UUID `gorm:"column:animal_id;type:uuid;primaryKey" json:"animal_id"`
	AnimalTag          string    `gorm:"column:animal_tag;uniqueIndex;not null" json:"animal_tag"`
	AnimalBreed        string    `gorm:"column:animal_breed" json:"animal_breed"`
	AnimalCoatColor    string    `gorm:"column:animal_coat_color" json:"animal_coat_color"`
	AnimalAgeMonths    int       `gorm:"column:animal_age_months" json:"animal_age_months"`
	AnimalStatus       string    `gorm:"column:animal_status;not null;default:'Active'" json:"animal_status"`
	AnimalPurchaseDate time.Time `gorm:"column:animal_purchase_date;type:date;not null" json:"animal_purchase_date"`
	AnimalFarm         string    `gorm:"column:animal_farm" json:"animal_farm"`
	AnimalPen          string    `gorm:"column:animal_pen" json:"animal_pen"`
	AnimalCreatedAt    time.Time `gorm:"column:animal_created_at;autoCreateTime" json:"animal_created_at"`
	AnimalUpdatedAt    time.Time `gorm:"column:animal_updated_at;autoUpdateTime" json:"animal_updated_at"`
}

func (AnimalModel) TableName() string {
	return "animals"
}

func (m *AnimalModel) BeforeCreate(tx *gorm.DB) error {
	if m.AnimalID == uuid.Nil {
		m.AnimalID = uuid.New()
	}
	return nil
}
