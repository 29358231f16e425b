package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	animalModel "ternakku_backend/internals/features/livestock/animals/model"
	checkpointDTO "ternakku_backend/internals/features/livestock/checkpoints/dto"
	checkpointModel "ternakku_backend/internals/features/livestock/checkpoints/model"
	checkpointService "ternakku_backend/internals/features/livestock/checkpoints/service"
	weightModel "ternakku_backend/internals/features/livestock/weights/model"
	helper "ternakku_backend/internals/helpers"
)

type CheckpointController struct {
	DB *gorm.DB
}

func NewCheckpointController(db *gorm.DB) *CheckpointController {
	return &CheckpointController{DB: db}
}

// buildTreatments menyusun baris treatment dari request.
// Entri tanpa nama dilewati diam-diam (bukan error).
func buildTreatments(recordID uuid.UUID, req checkpointDTO.CompleteCheckpointRequest) []checkpointModel.TreatmentModel {
	var out []checkpointModel.TreatmentModel

	add := func(category string, in *checkpointDTO.TreatmentInput) {
		if in == nil || strings.TrimSpace(in.Name) == "" {
			return
		}
		out = append(out, checkpointModel.TreatmentModel{
			TreatmentRecordID: recordID,
			TreatmentCategory: category,
			TreatmentName:     strings.TrimSpace(in.Name),
			TreatmentBatch:    strings.TrimSpace(in.Batch),
			TreatmentDose:     strings.TrimSpace(in.Dose),
		})
	}

	add(checkpointModel.TreatmentCategoryVaccine, req.Vaccine)
	add(checkpointModel.TreatmentCategoryDewormer, req.Dewormer)
	for i := range req.Medicines {
		add(checkpointModel.TreatmentCategoryMedicine, &req.Medicines[i])
	}
	return out
}

// =======================================================
// POST /api/checkpoints/:id/complete
// =======================================================
// Satu transaksi untuk lima langkah: insert record → tandai checkpoint
// selesai (conditional update, one-time) → insert treatments → muat ulang
// riwayat timbang → append baris weight history dengan metrik ADG.
// Gagal di langkah mana pun = rollback semuanya, checkpoint tetap terbuka.
func (ctrl *CheckpointController) CompleteCheckpoint(c *fiber.Ctx) error {
	checkpointID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID checkpoint tidak valid")
	}

	var req checkpointDTO.CompleteCheckpointRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	checkDate, ok := helper.ParseDateYMD(req.CheckDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal pemeriksaan wajib diisi (format YYYY-MM-DD)")
	}

	var recordID uuid.UUID
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cp checkpointModel.ScheduledCheckpointModel
		if err := tx.First(&cp, "scheduled_checkpoint_id = ?", checkpointID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Checkpoint tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca checkpoint")
		}

		var animal animalModel.AnimalModel
		if err := tx.First(&animal, "animal_id = ?", cp.ScheduledCheckpointAnimalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Hewan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca data hewan")
		}

		// 1. Catat hasil pemeriksaan
		record := checkpointModel.CheckpointRecordModel{
			CheckpointRecordCheckpointID: cp.ScheduledCheckpointID,
			CheckpointRecordAnimalID:     animal.AnimalID,
			CheckpointRecordCheckDate:    checkDate,
			CheckpointRecordWeightKg:     req.WeightKg,
			CheckpointRecordNotes:        req.Notes,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan hasil pemeriksaan")
		}

		// 2. Tandai selesai, pakai conditional update supaya completion hanya
		// bisa terjadi sekali; pihak yang kalah balapan menerima 409.
		now := time.Now()
		res := tx.Model(&checkpointModel.ScheduledCheckpointModel{}).
			Where("scheduled_checkpoint_id = ? AND scheduled_checkpoint_completed_at IS NULL", cp.ScheduledCheckpointID).
			Updates(map[string]any{
				"scheduled_checkpoint_completed_at": now,
				"scheduled_checkpoint_record_id":    record.CheckpointRecordID,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai checkpoint selesai")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Checkpoint sudah diselesaikan")
		}

		// 3. Treatments (vaksin/obat cacing/obat)
		if treatments := buildTreatments(record.CheckpointRecordID, req); len(treatments) > 0 {
			if err := tx.Create(&treatments).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan treatment")
			}
		}

		// 4. Muat riwayat timbang urut tanggal
		var history []weightModel.WeightHistoryModel
		if err := tx.
			Where("weight_history_animal_id = ?", animal.AnimalID).
			Order("weight_history_check_date ASC, weight_history_created_at ASC").
			Find(&history).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca riwayat timbang")
		}
		entries := make([]checkpointService.WeighEntry, 0, len(history))
		for _, h := range history {
			entries = append(entries, checkpointService.WeighEntry{
				CheckDate: h.WeightHistoryCheckDate,
				WeightKg:  h.WeightHistoryWeightKg,
			})
		}

		// 5. Hitung metrik lalu append baris weight history
		metrics := checkpointService.ComputeGrowthMetrics(entries, checkDate, req.WeightKg)
		entry := weightModel.WeightHistoryModel{
			WeightHistoryAnimalID:      animal.AnimalID,
			WeightHistoryCheckDate:     checkDate,
			WeightHistoryWeightKg:      req.WeightKg,
			WeightHistoryWeightDiff:    metrics.WeightDiff,
			WeightHistoryDaysSinceLast: metrics.DaysSinceLast,
			WeightHistoryAdg:           metrics.Adg,
			WeightHistoryOverallAdg:    metrics.OverallAdg,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan riwayat timbang")
		}

		recordID = record.CheckpointRecordID
		return nil
	}); err != nil {
		log.Println("[ERROR] Penyelesaian checkpoint gagal:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Checkpoint selesai", fiber.Map{
		"record_id": recordID,
	})
}
