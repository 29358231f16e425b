// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	animalRoutes "ternakku_backend/internals/features/livestock/animals/route"
	checkpointRoutes "ternakku_backend/internals/features/livestock/checkpoints/route"
	transitionRoutes "ternakku_backend/internals/features/livestock/transitions/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== LIVESTOCK =====================
	log.Println("[INFO] Setting up AnimalRoutes...")
	animalRoutes.AnimalRoutes(api, db)

	log.Println("[INFO] Setting up CheckpointRoutes...")
	checkpointRoutes.CheckpointRoutes(api, db)

	log.Println("[INFO] Setting up TransitionRoutes...")
	transitionRoutes.TransitionRoutes(api, db)
}
