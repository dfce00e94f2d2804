package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hidogang/chipkuold-sub000/config"
	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/jobs"
	"github.com/hidogang/chipkuold-sub000/logger"
	"github.com/hidogang/chipkuold-sub000/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	appLog := logger.New(cfg.LogLevel)
	database.Connect(cfg)

	app := fiber.New()
	routes.Setup(app)

	scheduler := jobs.StartScheduler(cfg)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	appLog.WithField("addr", addr).Info("Server running")

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Panicf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Gracefully shutting down...")
	scheduler.Stop()
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited cleanly")
}
