package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	checkpointDTO "ternakku_backend/internals/features/livestock/checkpoints/dto"
	checkpointModel "ternakku_backend/internals/features/livestock/checkpoints/model"
	helper "ternakku_backend/internals/helpers"
)

// TemplateController mengelola checkpoint_templates (sisi admin).
// Mesin penjadwalan sendiri hanya membaca tabel ini; jadwal yang sudah
// ter-generate adalah snapshot dan tidak ikut berubah.
type TemplateController struct {
	DB *gorm.DB
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

// GET /api/checkpoint-templates
func (ctrl *TemplateController) ListTemplates(c *fiber.Ctx) error {
	var templates []checkpointModel.CheckpointTemplateModel
	if err := ctrl.DB.
		Order("checkpoint_template_day_offset ASC").
		Find(&templates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil template")
	}
	return helper.JsonOK(c, "ok", templates)
}

// POST /api/checkpoint-templates
func (ctrl *TemplateController) CreateTemplate(c *fiber.Ctx) error {
	var req checkpointDTO.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Label = strings.TrimSpace(req.Label)
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	template := checkpointModel.CheckpointTemplateModel{
		CheckpointTemplateLabel:     req.Label,
		CheckpointTemplateDayOffset: req.DayOffset,
		CheckpointTemplateIsActive:  true,
	}
	if err := ctrl.DB.Create(&template).Error; err != nil {
		log.Println("[ERROR] Gagal membuat template:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat template")
	}
	return helper.JsonCreated(c, "Template dibuat", template)
}

// PATCH /api/checkpoint-templates/:id/deactivate
func (ctrl *TemplateController) DeactivateTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	var template checkpointModel.CheckpointTemplateModel
	if err := ctrl.DB.First(&template, "checkpoint_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca template")
	}

	if err := ctrl.DB.Model(&template).
		Update("checkpoint_template_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan template")
	}
	return helper.JsonUpdated(c, "Template dinonaktifkan", template)
}
