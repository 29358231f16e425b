package seeds

import (
	"log"

	"gorm.io/gorm"
)

func Run(db *gorm.DB) {
	if err := SeedCheckpointTemplates(db); err != nil {
		log.Println("[ERROR] Seeder template checkpoint gagal:", err)
	}
}
