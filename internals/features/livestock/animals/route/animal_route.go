package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	animalController "ternakku_backend/internals/features/livestock/animals/controller"
	weightController "ternakku_backend/internals/features/livestock/weights/controller"
)

func AnimalRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := animalController.NewAnimalController(db)
	weights := weightController.NewWeightHistoryController(db)

	animalRoutes := router.Group("/animals")
	animalRoutes.Post("/", ctrl.RegisterAnimal)
	animalRoutes.Get("/", ctrl.FilterAnimals)
	animalRoutes.Get("/checkpoints", ctrl.ListWithCheckpoints)
	animalRoutes.Get("/:tag/weights", weights.GetByAnimalTag)
}
