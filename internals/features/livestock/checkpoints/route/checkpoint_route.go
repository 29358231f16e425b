package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkpointController "ternakku_backend/internals/features/livestock/checkpoints/controller"
)

func CheckpointRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := checkpointController.NewCheckpointController(db)
	templates := checkpointController.NewTemplateController(db)

	checkpointRoutes := router.Group("/checkpoints")
	checkpointRoutes.Post("/:id/complete", ctrl.CompleteCheckpoint)

	templateRoutes := router.Group("/checkpoint-templates")
	templateRoutes.Get("/", templates.ListTemplates)
	templateRoutes.Post("/", templates.CreateTemplate)
	templateRoutes.Patch("/:id/deactivate", templates.DeactivateTemplate)
}
