package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	animalModel "ternakku_backend/internals/features/livestock/animals/model"
	transitionModel "ternakku_backend/internals/features/livestock/transitions/model"
)

// LockAnimalByTag membaca hewan di dalam transaksi pemanggil, dengan
// SELECT ... FOR UPDATE pada postgres supaya dua transisi konkuren untuk
// hewan yang sama terserialisasi di level baris. SQLite (driver test)
// tidak mengenal FOR UPDATE, jadi clause-nya hanya dipasang untuk postgres;
// guard optimistik di ApplyStatusTransition tetap menjaga one-time-nya.
func LockAnimalByTag(tx *gorm.DB, tag string) (*animalModel.AnimalModel, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var animal animalModel.AnimalModel
	if err := q.Where("animal_tag = ?", strings.TrimSpace(tag)).First(&animal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Hewan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca data hewan")
	}
	return &animal, nil
}

// ApplyStatusTransition menjalankan langkah 3 dari protokol transisi:
// update status hewan lalu append satu baris status_history yang merekam
// previous_status hasil pembacaan segar di transaksi yang sama.
//
// Update-nya dijaga WHERE animal_status = <prev>: kalau transisi lain sempat
// commit duluan, RowsAffected == 0 dan pemanggil menerima 409, bukan audit
// ganda dengan previous_status basi. referenceID menunjuk baris detail
// (karantina/potong/mati) yang memicu transisi.
func ApplyStatusTransition(tx *gorm.DB, animal *animalModel.AnimalModel, newStatus, changedBy, reason string, referenceID uuid.UUID) error {
	changedBy = strings.TrimSpace(changedBy)
	if changedBy == "" {
		changedBy = "System"
	}

	res := tx.Model(&animalModel.AnimalModel{}).
		Where("animal_id = ? AND animal_status = ?", animal.AnimalID, animal.AnimalStatus).
		Update("animal_status", newStatus)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status hewan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Status hewan sudah berubah, muat ulang data")
	}

	history := transitionModel.StatusHistoryModel{
		StatusHistoryAnimalID:       animal.AnimalID,
		StatusHistoryPreviousStatus: animal.AnimalStatus,
		StatusHistoryNewStatus:      newStatus,
		StatusHistoryChangedBy:      changedBy,
		StatusHistoryChangeReason:   reason,
		StatusHistoryReferenceID:    referenceID,
	}
	if err := tx.Create(&history).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat riwayat status")
	}
	return nil
}
