package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	animalModel "ternakku_backend/internals/features/livestock/animals/model"
	transitionDTO "ternakku_backend/internals/features/livestock/transitions/dto"
	transitionModel "ternakku_backend/internals/features/livestock/transitions/model"
	transitionService "ternakku_backend/internals/features/livestock/transitions/service"
	helper "ternakku_backend/internals/helpers"
)

// TransitionController menangani kejadian siklus hidup (karantina, potong,
// mati). Ketiganya memakai protokol yang sama: baca status lama → insert
// baris detail → update status + append audit, semuanya satu transaksi.
type TransitionController struct {
	DB *gorm.DB
}

func NewTransitionController(db *gorm.DB) *TransitionController {
	return &TransitionController{DB: db}
}

// =======================================================
// POST /api/animals/:tag/quarantine
// =======================================================
func (ctrl *TransitionController) RecordQuarantine(c *fiber.Ctx) error {
	var req transitionDTO.RecordQuarantineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	startDate, ok := helper.ParseDateYMD(req.StartDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal mulai karantina wajib diisi (format YYYY-MM-DD)")
	}
	var endDate *time.Time
	if req.EndDate != nil {
		d, ok := helper.ParseDateYMD(*req.EndDate)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai karantina tidak valid")
		}
		endDate = &d
	}

	var quarantineID uuid.UUID
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		animal, err := transitionService.LockAnimalByTag(tx, c.Params("tag"))
		if err != nil {
			return err
		}

		record := transitionModel.QuarantineModel{
			QuarantineAnimalID:  animal.AnimalID,
			QuarantineReason:    req.Reason,
			QuarantineStartDate: startDate,
			QuarantineEndDate:   endDate,
			QuarantineNotes:     req.Notes,
			QuarantineFarm:      animal.AnimalFarm,
			QuarantinePen:       animal.AnimalPen,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data karantina")
		}

		if err := transitionService.ApplyStatusTransition(tx, animal,
			animalModel.AnimalStatusInactive, req.ChangedBy,
			transitionModel.ReasonQuarantine, record.QuarantineID); err != nil {
			return err
		}

		quarantineID = record.QuarantineID
		return nil
	}); err != nil {
		log.Println("[ERROR] Pencatatan karantina gagal:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Karantina tercatat", fiber.Map{
		"quarantine_id": quarantineID,
	})
}

// =======================================================
// POST /api/animals/:tag/slaughter
// =======================================================
func (ctrl *TransitionController) RecordSlaughter(c *fiber.Ctx) error {
	var req transitionDTO.RecordSlaughterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slaughterDate, ok := helper.ParseDateYMD(req.SlaughterDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal potong wajib diisi (format YYYY-MM-DD)")
	}

	var slaughterID uuid.UUID
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		animal, err := transitionService.LockAnimalByTag(tx, c.Params("tag"))
		if err != nil {
			return err
		}

		record := transitionModel.SlaughterModel{
			SlaughterAnimalID:         animal.AnimalID,
			SlaughterDate:             slaughterDate,
			SlaughterWeightBefore:     req.WeightBefore,
			SlaughterFinalWeightGain:  req.FinalWeightGain,
			SlaughterCarcassWeight:    req.CarcassWeight,
			SlaughterCarcassRatio:     req.CarcassRatio,
			SlaughterCarcassQuality:   req.CarcassQuality,
			SlaughterQualityNotes:     req.QualityNotes,
			SlaughterCustomerFeedback: req.CustomerFeedback,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data pemotongan")
		}

		if err := transitionService.ApplyStatusTransition(tx, animal,
			animalModel.AnimalStatusInactive, req.ChangedBy,
			transitionModel.ReasonSlaughter, record.SlaughterID); err != nil {
			return err
		}

		slaughterID = record.SlaughterID
		return nil
	}); err != nil {
		log.Println("[ERROR] Pencatatan pemotongan gagal:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Pemotongan tercatat", fiber.Map{
		"slaughter_id": slaughterID,
	})
}

// =======================================================
// POST /api/animals/:tag/death
// =======================================================
func (ctrl *TransitionController) RecordDeath(c *fiber.Ctx) error {
	var req transitionDTO.RecordDeathRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	deathDate, ok := helper.ParseDateYMD(req.Date)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal kematian wajib diisi (format YYYY-MM-DD)")
	}

	var deathID uuid.UUID
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		animal, err := transitionService.LockAnimalByTag(tx, c.Params("tag"))
		if err != nil {
			return err
		}

		// Lokasi diambil dari posisi hewan saat kematian dicatat
		record := transitionModel.DeathModel{
			DeathAnimalID:     animal.AnimalID,
			DeathCause:        req.Cause,
			DeathCauseOfDeath: req.CauseOfDeath,
			DeathDate:         deathDate,
			DeathFarm:         animal.AnimalFarm,
			DeathPen:          animal.AnimalPen,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data kematian")
		}

		if err := transitionService.ApplyStatusTransition(tx, animal,
			animalModel.AnimalStatusInactive, req.ChangedBy,
			transitionModel.ReasonDeath, record.DeathID); err != nil {
			return err
		}

		deathID = record.DeathID
		return nil
	}); err != nil {
		log.Println("[ERROR] Pencatatan kematian gagal:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Kematian tercatat", fiber.Map{
		"death_id": deathID,
	})
}

// =======================================================
// GET /api/animals/:tag/status-history
// =======================================================
func (ctrl *TransitionController) GetStatusHistory(c *fiber.Ctx) error {
	var animal animalModel.AnimalModel
	if err := ctrl.DB.Where("animal_tag = ?", c.Params("tag")).First(&animal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Hewan tidak ditemukan")
	}

	var history []transitionModel.StatusHistoryModel
	if err := ctrl.DB.
		Where("status_history_animal_id = ?", animal.AnimalID).
		Order("status_history_created_at ASC").
		Find(&history).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat status")
	}
	return helper.JsonOK(c, "ok", history)
}
