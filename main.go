package main

import (
	"log"
	"os"
	"time"

	"github.com/cherki-hamza/vigile-parent-backend/config"
	"github.com/cherki-hamza/vigile-parent-backend/controllers"
	"github.com/cherki-hamza/vigile-parent-backend/repositories"
	"github.com/cherki-hamza/vigile-parent-backend/repositories/impl"
	"github.com/cherki-hamza/vigile-parent-backend/routes"
	"github.com/cherki-hamza/vigile-parent-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// startPairingCodeJanitor запускает пассивную чистку просроченных кодов (аналог
// TTL-индекса); проверка срока при верификации остается основной.
func startPairingCodeJanitor(repo repositories.PairingCodeRepository) {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := repo.DeleteExpired()
			if err != nil {
				log.Printf("Failed to delete expired pairing codes: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("Deleted %d expired pairing codes", deleted)
			}
		}
	}()
}

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.InitDatabase()
	config.InitFirebase()

	// Initialize repositories
	parentRepo := impl.NewParentRepository(config.DB)
	childRepo := impl.NewChildRepository(config.DB)
	pairingCodeRepo := impl.NewPairingCodeRepository(config.DB)

	// Initialize services
	mailer := services.NewEmailService()

	var pusher services.Pusher
	if config.FirebaseApp != nil {
		pushService, err := services.NewPushService(config.FirebaseApp)
		if err != nil {
			log.Printf("Push notifications disabled: %v", err)
		} else {
			pusher = pushService
		}
	}

	authService := services.NewAuthService(parentRepo, mailer)
	pairingService := services.NewPairingService(parentRepo, childRepo, pairingCodeRepo, mailer, pusher)
	childService := services.NewChildService(childRepo, parentRepo)

	// Set services in controllers
	controllers.SetAuthService(authService)
	controllers.SetPairingService(pairingService)
	controllers.SetChildService(childService)

	startPairingCodeJanitor(pairingCodeRepo)

	// Initialize Gin router
	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	r.Run(":" + port)
}
