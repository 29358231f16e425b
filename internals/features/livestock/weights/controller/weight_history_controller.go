package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	animalModel "ternakku_backend/internals/features/livestock/animals/model"
	weightModel "ternakku_backend/internals/features/livestock/weights/model"
	helper "ternakku_backend/internals/helpers"
)

type WeightHistoryController struct {
	DB *gorm.DB
}

func NewWeightHistoryController(db *gorm.DB) *WeightHistoryController {
	return &WeightHistoryController{DB: db}
}

// GET /api/animals/:tag/weights
// Riwayat timbang beserta field turunan (diff/days/adg/overall_adg),
// urut tanggal pemeriksaan.
func (ctrl *WeightHistoryController) GetByAnimalTag(c *fiber.Ctx) error {
	var animal animalModel.AnimalModel
	if err := ctrl.DB.Where("animal_tag = ?", c.Params("tag")).First(&animal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Hewan tidak ditemukan")
	}

	var history []weightModel.WeightHistoryModel
	if err := ctrl.DB.
		Where("weight_history_animal_id = ?", animal.AnimalID).
		Order("weight_history_check_date ASC, weight_history_created_at ASC").
		Find(&history).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat timbang")
	}
	return helper.JsonOK(c, "ok", history)
}
