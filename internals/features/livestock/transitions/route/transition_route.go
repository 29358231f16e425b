package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transitionController "ternakku_backend/internals/features/livestock/transitions/controller"
)

func TransitionRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := transitionController.NewTransitionController(db)

	animalRoutes := router.Group("/animals")
	animalRoutes.Post("/:tag/quarantine", ctrl.RecordQuarantine)
	animalRoutes.Post("/:tag/slaughter", ctrl.RecordSlaughter)
	animalRoutes.Post("/:tag/death", ctrl.RecordDeath)
	animalRoutes.Get("/:tag/status-history", ctrl.GetStatusHistory)
}
