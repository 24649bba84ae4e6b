package main

import (
	"codeeasy/config"
	"codeeasy/database"
	authRoutes "codeeasy/routers/authRoutes"
	contactRoutes "codeeasy/routers/contactRoutes"
	courseRoutes "codeeasy/routers/courseRoutes"
	reviewRoutes "codeeasy/routers/reviewRoutes"
	"codeeasy/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	// The review form is served from the marketing site, so every origin is
	// allowed; the header list is the fixed set the form sends.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Authorization, Content-Type, X-Client-Info, Apikey",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the static marketing site from the public folder
	app.Static("/", "./public")

	reviewRoutes.SetupReviewRoutes(app)
	reviewRoutes.SetupAdminReviewRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	contactRoutes.SetupContactRoutes(app)

	utils.InitializeModerationScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
