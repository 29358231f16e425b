package dto

import (
	"time"

	"github.com/google/uuid"

	animalModel "ternakku_backend/internals/features/livestock/animals/model"
)

/* =========================================================
   Create Request
========================================================= */

type RegisterAnimalRequest struct {
	Tag          string `json:"tag" validate:"required"`
	Breed        string `json:"breed"`
	CoatColor    string `json:"coat_color"`
	AgeMonths    int    `json:"age_months" validate:"gte=0"`
	PurchaseDate string `json:"purchase_date" validate:"required"` // "2006-01-02"
	Farm         string `json:"farm"`
	Pen          string `json:"pen"`
}

/* =========================================================
   Response DTO
========================================================= */

type AnimalDTO struct {
	AnimalID     uuid.UUID `json:"animal_id"`
	Tag          string    `json:"tag"`
	Breed        string    `json:"breed"`
	CoatColor    string    `json:"coat_color"`
	AgeMonths    int       `json:"age_months"`
	Status       string    `json:"status"`
	PurchaseDate time.Time `json:"purchase_date"`
	Farm         string    `json:"farm"`
	Pen          string    `json:"pen"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromAnimalModel(a animalModel.AnimalModel) AnimalDTO {
	return AnimalDTO{
		AnimalID:     a.AnimalID,
		Tag:          a.AnimalTag,
		Breed:        a.AnimalBreed,
		CoatColor:    a.AnimalCoatColor,
		AgeMonths:    a.AnimalAgeMonths,
		Status:       a.AnimalStatus,
		PurchaseDate: a.AnimalPurchaseDate,
		Farm:         a.AnimalFarm,
		Pen:          a.AnimalPen,
		CreatedAt:    a.AnimalCreatedAt,
	}
}

// AnimalSummaryDTO: hewan beserta berat terakhirnya, untuk endpoint filter.
type AnimalSummaryDTO struct {
	AnimalDTO
	LastWeightKg  *float64   `json:"last_weight_kg,omitempty"`
	LastCheckDate *time.Time `json:"last_check_date,omitempty"`
}
