package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Franciscyber-J/habiticon-gyn-bot/database"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/handlers"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/jobs"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/routes"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/services"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - checking environment variables")
	}

	// Sessions always live in memory; the archive may go to PostgreSQL.
	memStore := storage.NewMemoryStore()
	var archive storage.LeadArchive = memStore

	if os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("DB_NAME") == "" {
		log.Println("⚠️  Lead archive in memory (leads lost on restart)")
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(); err != nil {
			log.Fatal(err)
		}
		if err := database.DB.AutoMigrate(&models.LeadRecord{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		archive = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL lead archive")
	}

	twilioService, err := services.NewTwilioService()
	if err != nil {
		log.Fatal("Failed to initialize Twilio service:", err)
	}
	log.Println("✅ Twilio service initialized")

	notifier := services.NewNotifierFromEnv()
	if notifier != nil {
		log.Println("✅ Notification side channel configured")
	}

	leadService := services.NewLeadService(os.Getenv("MAKE_WEBHOOK_URL"), archive)
	if os.Getenv("MAKE_WEBHOOK_URL") == "" {
		log.Println("⚠️  MAKE_WEBHOOK_URL not set - lead submission disabled")
	}

	locks := storage.NewChatLocks()
	bot := services.NewBotService(memStore, locks, twilioService, leadService, notifier, botConfig())

	recapture := jobs.NewRecaptureJob(memStore, locks, twilioService, leadService)
	recapture.Start()

	app := fiber.New(fiber.Config{
		AppName: "Habiticon GYN Bot v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	whatsappHandler := handlers.NewWhatsAppHandler(bot)
	healthHandler := handlers.NewHealthHandler(memStore, archive)
	routes.SetupRoutes(app, whatsappHandler, healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9002"
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		recapture.Stop()
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Habiticon GYN Bot starting on port %s", port)
	log.Printf("📋 CRM webhook: %s", webhookStatus())
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func botConfig() services.BotConfig {
	cfg := services.BotConfig{
		LogoPath:      os.Getenv("LOGO_PATH"),
		LogoURL:       os.Getenv("LOGO_URL"),
		NotifyChannel: os.Getenv("NOTIFY_CHANNEL"),
	}
	if cfg.LogoPath == "" {
		cfg.LogoPath = "./logo.png"
	}
	if cfg.NotifyChannel == "" {
		cfg.NotifyChannel = "Novos Leads"
	}
	return cfg
}

func webhookStatus() string {
	if os.Getenv("MAKE_WEBHOOK_URL") == "" {
		return "not configured"
	}
	return "configured"
}
