package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/avlorenzana/jobtrail/adapters/event"
	httpAdapter "github.com/avlorenzana/jobtrail/adapters/http"
	gotrue "github.com/avlorenzana/jobtrail/adapters/identity"
	"github.com/avlorenzana/jobtrail/adapters/mail"
	"github.com/avlorenzana/jobtrail/adapters/media_storage"
	"github.com/avlorenzana/jobtrail/adapters/persistence"
	"github.com/avlorenzana/jobtrail/internal/application/service"
	applicationUC "github.com/avlorenzana/jobtrail/internal/application/usecase/application"
	calendarUC "github.com/avlorenzana/jobtrail/internal/application/usecase/calendar"
	notificationUC "github.com/avlorenzana/jobtrail/internal/application/usecase/notification"
	profileUC "github.com/avlorenzana/jobtrail/internal/application/usecase/profile"
	signupUC "github.com/avlorenzana/jobtrail/internal/application/usecase/signup"
	"github.com/avlorenzana/jobtrail/internal/config"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

func main() {
	fmt.Println("Start Job Trail API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Pick a KV driver: Postgres when a DSN is configured, otherwise Redis,
	// otherwise an in-process map for local development.
	var store persistence.KV
	switch {
	case cfg.DB.DSN != "":
		dbPool, err := persistence.NewPostgresPool(cfg)
		if err != nil {
			log.Fatalf("FATAL: cannot connect Postgres: %v", err)
		}
		defer dbPool.Close()
		store = persistence.NewPostgresKV(dbPool, appLogger)
	case cfg.Redis.Addr != "":
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("FATAL: cannot connect Redis: %v", err)
		}
		defer redisClient.Close()
		store = persistence.NewRedisKV(redisClient, appLogger)
	default:
		log.Println("warning: no DB_DSN or REDIS_ADDR configured, using in-memory store.")
		store = persistence.NewMemoryKV()
	}

	// Optional collaborators: Kafka and Cloudinary are skipped when not
	// configured, same contract as the mail provider key.
	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg)
		if err != nil {
			log.Fatalf("FATAL: cannot init Kafka: %v", err)
		}
		defer kafkaClient.Close()
	} else {
		log.Println("warning: no KAFKA_BROKERS configured, lifecycle events disabled.")
	}

	var uploader service.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = media_storage.NewCloudinaryAdapter(cfg)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
		}
	} else {
		log.Println("warning: no CLOUDINARY_CLOUD_NAME configured, avatars stored inline.")
	}

	identitySvc, err := gotrue.NewGoTrueAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot init identity service: %v", err)
	}

	mailer := mail.NewResendAdapter(cfg, appLogger)

	// Repositories
	appRepo := persistence.NewKVApplicationRepo(store, appLogger)
	profileRepo := persistence.NewKVProfileRepo(store, appLogger)

	// Use Cases
	createApplicationUseCase := applicationUC.NewCreateApplicationUseCase(appRepo, kafkaClient, appLogger)
	updateApplicationUseCase := applicationUC.NewUpdateApplicationUseCase(appRepo, kafkaClient, appLogger)
	deleteApplicationUseCase := applicationUC.NewDeleteApplicationUseCase(appRepo, kafkaClient, appLogger)
	listApplicationsUseCase := applicationUC.NewListApplicationsUseCase(appRepo, appLogger)
	calendarUseCase := calendarUC.NewCalendarUseCase(appRepo, appLogger)
	signUpUseCase := signupUC.NewSignUpUseCase(identitySvc, appLogger)
	dispatchUseCase := notificationUC.NewDispatchUseCase(identitySvc, mailer, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, uploader, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(signUpUseCase, appLogger)
	notificationHandler := httpAdapter.NewNotificationHandler(dispatchUseCase, appLogger)
	applicationHandler := httpAdapter.NewApplicationHandler(
		createApplicationUseCase,
		updateApplicationUseCase,
		deleteApplicationUseCase,
		listApplicationsUseCase,
		calendarUseCase,
		appLogger,
	)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(identitySvc, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))
	router.Use(errorMiddleware)

	api := router.Group(cfg.App.BasePath)
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
		api.POST("/signup", authHandler.SignUp)

		// Resolves its own caller inside the use case.
		api.POST("/send-notification", notificationHandler.Send)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			applications := private.Group("/applications")
			{
				applications.GET("", applicationHandler.List)
				applications.POST("", applicationHandler.Create)
				applications.PUT("/:id", applicationHandler.Update)
				applications.DELETE("/:id", applicationHandler.Delete)
				applications.GET("/calendar", applicationHandler.CalendarOn)
				applications.GET("/calendar/dates", applicationHandler.CalendarDates)
			}

			private.GET("/profile", profileHandler.GetProfile)
			private.PUT("/profile", profileHandler.SaveProfile)
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
