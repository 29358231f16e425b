package main

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"ternakku_backend/internals/configs"
	database "ternakku_backend/internals/databases"
	middlewares "ternakku_backend/internals/middlewares"
	routes "ternakku_backend/internals/route"
	seeds "ternakku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + skema
	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ Migrasi skema gagal: %v", err)
	}

	// 🌱 template checkpoint default
	seeds.Run(database.DB)

	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	port := configs.AppPort
	log.Println("🚀 ternakku backend listen di port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server gagal start: %v", err)
	}
}
