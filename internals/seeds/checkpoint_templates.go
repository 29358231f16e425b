package seeds

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	checkpointModel "ternakku_backend/internals/features/livestock/checkpoints/model"
)

// jadwal default: hari ke-0 (kedatangan) sampai hari ke-75
var defaultOffsets = []int{0, 3, 7, 21, 50, 75}

// SeedCheckpointTemplates mengisi template default sekali saja;
// kalau tabel sudah berisi, seeder tidak menyentuh apa pun.
func SeedCheckpointTemplates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&checkpointModel.CheckpointTemplateModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[INFO] Template checkpoint sudah ada, seeder dilewati")
		return nil
	}

	templates := make([]checkpointModel.CheckpointTemplateModel, 0, len(defaultOffsets))
	for _, offset := range defaultOffsets {
		templates = append(templates, checkpointModel.CheckpointTemplateModel{
			CheckpointTemplateLabel:     fmt.Sprintf("Day %d", offset),
			CheckpointTemplateDayOffset: offset,
			CheckpointTemplateIsActive:  true,
		})
	}
	if err := db.Create(&templates).Error; err != nil {
		return err
	}
	log.Printf("[SUCCESS] %d template checkpoint default ter-seed", len(templates))
	return nil
}
