package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/AndreaRizzo/beautyHome-v1/cron"
	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/redis"
	"github.com/AndreaRizzo/beautyHome-v1/routes"
)

func main() {
	app := fiber.New()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("beautyHome booking API")
	})
	routes.SetupCatalogRoutes(app)
	routes.SetupConsumerRoutes(app)
	routes.SetupOperatorRoutes(app)
	routes.SetupGiftCardRoutes(app)

	log.Fatal(app.Listen(":8000"))
}
