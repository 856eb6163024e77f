package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"cafe-fausse/config"
	httpapi "cafe-fausse/internal/api/http"
	"cafe-fausse/internal/service"
	"cafe-fausse/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to prepare schema: ", err)
	}

	redisClient := config.MustInitRedis()
	defer redisClient.Close()
	cache := storage.NewRedisCache(redisClient, cfg.MenuCacheTTL)

	kafkaWriter := config.NewKafkaWriter("events")
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	newsletterSvc := service.NewNewsletterService(repo, repo, publisher, logger)
	reservationSvc := service.NewReservationService(repo, newsletterSvc, publisher, logger)
	menuSvc := service.NewMenuService(repo, cache, logger)
	customerSvc := service.NewCustomerService(repo, logger)
	authSvc := service.NewAuthService(repo, cfg.JWTSecret, cfg.TokenTTL, logger)
	adminSvc := service.NewAdminService(repo, repo, logger)

	handler := httpapi.NewHandler(
		reservationSvc,
		menuSvc,
		newsletterSvc,
		customerSvc,
		authSvc,
		adminSvc,
		service.DefaultQRGenerator{BaseURL: cfg.PublicURL},
		logger,
	)

	logger.Info("starting server", slog.String("addr", cfg.HTTPAddr))
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, httpapi.NewRouter(handler)))
}
