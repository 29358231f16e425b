package middlewares

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares memasang middleware dasar aplikasi
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())

	// request timing sederhana
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] %s %s status=%d dur=%s",
			c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})
}
