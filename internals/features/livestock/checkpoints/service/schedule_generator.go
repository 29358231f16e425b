package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	checkpointModel "ternakku_backend/internals/features/livestock/checkpoints/model"
	helper "ternakku_backend/internals/helpers"
)

// GenerateSchedule membentuk snapshot jadwal checkpoint untuk satu hewan:
// satu baris per template aktif, scheduled_date = purchaseDate + dayOffset
// (aritmetika per-kalender-hari). Fungsi murni: input sama selalu
// menghasilkan tanggal yang sama. Insert-nya dilakukan pemanggil dalam
// transaksi registrasi.
func GenerateSchedule(animalID uuid.UUID, purchaseDate time.Time, templates []checkpointModel.CheckpointTemplateModel) ([]checkpointModel.ScheduledCheckpointModel, error) {
	if purchaseDate.IsZero() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tanggal pembelian wajib diisi")
	}

	base := helper.DateOnly(purchaseDate)
	out := make([]checkpointModel.ScheduledCheckpointModel, 0, len(templates))
	for _, t := range templates {
		out = append(out, checkpointModel.ScheduledCheckpointModel{
			ScheduledCheckpointAnimalID:   animalID,
			ScheduledCheckpointTemplateID: t.CheckpointTemplateID,
			ScheduledCheckpointLabel:      t.CheckpointTemplateLabel,
			ScheduledCheckpointDayOffset:  t.CheckpointTemplateDayOffset,
			ScheduledCheckpointDate:       base.AddDate(0, 0, t.CheckpointTemplateDayOffset),
		})
	}
	return out, nil
}
