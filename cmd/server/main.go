package main

import (
	"context"

	adminshandler "github.com/Vinaypenke01/Elite-Cars/internal/admins/handler"
	adminsrepository "github.com/Vinaypenke01/Elite-Cars/internal/admins/repository"
	adminsservice "github.com/Vinaypenke01/Elite-Cars/internal/admins/service"
	authhandler "github.com/Vinaypenke01/Elite-Cars/internal/auth/handler"
	authrepository "github.com/Vinaypenke01/Elite-Cars/internal/auth/repository"
	authservice "github.com/Vinaypenke01/Elite-Cars/internal/auth/service"
	"github.com/Vinaypenke01/Elite-Cars/internal/auth/token"
	bookingshandler "github.com/Vinaypenke01/Elite-Cars/internal/bookings/handler"
	bookingsrepository "github.com/Vinaypenke01/Elite-Cars/internal/bookings/repository"
	bookingsservice "github.com/Vinaypenke01/Elite-Cars/internal/bookings/service"
	bookingsvalidator "github.com/Vinaypenke01/Elite-Cars/internal/bookings/validator"
	imageshandler "github.com/Vinaypenke01/Elite-Cars/internal/images/handler"
	settingshandler "github.com/Vinaypenke01/Elite-Cars/internal/settings/handler"
	settingsrepository "github.com/Vinaypenke01/Elite-Cars/internal/settings/repository"
	settingsservice "github.com/Vinaypenke01/Elite-Cars/internal/settings/service"
	soldhandler "github.com/Vinaypenke01/Elite-Cars/internal/sold/handler"
	soldrepository "github.com/Vinaypenke01/Elite-Cars/internal/sold/repository"
	soldservice "github.com/Vinaypenke01/Elite-Cars/internal/sold/service"
	vehicleshandler "github.com/Vinaypenke01/Elite-Cars/internal/vehicles/handler"
	vehiclesrepository "github.com/Vinaypenke01/Elite-Cars/internal/vehicles/repository"
	vehiclesservice "github.com/Vinaypenke01/Elite-Cars/internal/vehicles/service"
	vehiclesvalidator "github.com/Vinaypenke01/Elite-Cars/internal/vehicles/validator"
	"github.com/Vinaypenke01/Elite-Cars/pkg/app"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	"github.com/Vinaypenke01/Elite-Cars/pkg/contracts"
	"github.com/Vinaypenke01/Elite-Cars/pkg/kafka"
	kafka_config "github.com/Vinaypenke01/Elite-Cars/pkg/kafka/config"
	"github.com/Vinaypenke01/Elite-Cars/pkg/middleware"
	"github.com/Vinaypenke01/Elite-Cars/pkg/storage"
)

const ServiceName = "elitecars-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetS3()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Elite Cars API")

	bookingEvents, mailEvents, closeProducers := initProducers(cfg)
	defer closeProducers()

	handlers := initHandlers(cfg, bookingEvents, mailEvents)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handlers...)
	serverApp.Run()
}

// initProducers builds the Kafka producers when the event bus is
// enabled. Domain services accept nil publishers and skip publishing.
func initProducers(cfg *config.Config) (kafka.Publisher, kafka.Publisher, func()) {
	kafkaCfg := kafka_config.Load()
	if !kafkaCfg.Enabled {
		cfg.Log.Info("Kafka event bus disabled")
		return nil, nil, func() {}
	}

	bookingProducer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.BookingTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create booking event producer", "error", err)
	}
	mailProducer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.MailTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create mail event producer", "error", err)
	}

	cfg.Log.Info("Kafka event bus enabled",
		"brokers", kafkaCfg.Brokers,
		"booking_topic", kafkaCfg.BookingTopic,
		"mail_topic", kafkaCfg.MailTopic,
	)

	return bookingProducer, mailProducer, func() {
		if err := bookingProducer.Close(); err != nil {
			cfg.Log.Error("Failed to close booking producer", "error", err)
		}
		if err := mailProducer.Close(); err != nil {
			cfg.Log.Error("Failed to close mail producer", "error", err)
		}
	}
}

func initHandlers(cfg *config.Config, bookingEvents, mailEvents kafka.Publisher) []contracts.Handler {
	// Admin profiles gate every back-office route.
	adminRepo := adminsrepository.NewMongoAdminRepository(cfg)
	adminService := adminsservice.NewAdminService(adminRepo, cfg)

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize session tokens", "error", err)
	}

	credentialRepo := authrepository.NewMongoCredentialRepository(cfg)
	authService := authservice.NewAuthService(credentialRepo, tokens, adminService, mailEvents, cfg)

	guard := middleware.RequireAdmin(
		authService.ResolveToken,
		func(ctx context.Context, uid string) (bool, error) {
			return adminService.IsAdmin(ctx, uid), nil
		},
		cfg.Log,
	)

	vehicleRepo := vehiclesrepository.NewMongoVehicleRepository(cfg)
	vehicleService := vehiclesservice.NewVehicleService(
		vehicleRepo,
		vehiclesvalidator.NewVehicleValidator(cfg.Log),
		cfg,
	)

	bookingRepo := bookingsrepository.NewMongoBookingRepository(cfg)
	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		bookingsvalidator.NewBookingValidator(cfg.Log),
		bookingEvents,
		cfg,
	)

	settingsRepo := settingsrepository.NewMongoSettingsRepository(cfg)
	settingsService := settingsservice.NewSettingsService(settingsRepo, cfg)

	soldRepo := soldrepository.NewMongoSoldRepository(cfg)
	soldService := soldservice.NewSoldService(soldRepo, cfg)

	imageStore := storage.NewImageStore(cfg.Client.S3, cfg.StorageBucket, storagePublicURL(cfg), cfg.Log)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		vehicleshandler.NewVehicleHandler(vehicleService, guard, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, guard, cfg.Log),
		adminshandler.NewAdminHandler(adminService, guard, cfg.Log),
		authhandler.NewAuthHandler(authService, cfg.Log),
		settingshandler.NewSettingsHandler(settingsService, guard, cfg.Log),
		soldhandler.NewSoldHandler(soldService, cfg.Log),
		imageshandler.NewImageHandler(imageStore, vehicleService, guard, cfg.Log),
	}
}

// storagePublicURL is where image URLs are served from. Without an
// explicit CDN base, path-style endpoint/bucket is assumed.
func storagePublicURL(cfg *config.Config) string {
	if cfg.StoragePublicURL != "" {
		return cfg.StoragePublicURL
	}
	return cfg.StorageEndpoint + "/" + cfg.StorageBucket
}
