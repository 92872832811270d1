package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"roomdesk/internal/api"
	"roomdesk/internal/config"
	"roomdesk/internal/repository"
	"roomdesk/internal/service"
)

func main() {
	godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	var rooms repository.RoomStore
	var bookings repository.BookingStore

	if cfg.DatabaseURL != "" {
		database, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logrus.Fatalf("Failed to open DB: %v", err)
		}
		if err := database.Ping(); err != nil {
			logrus.Fatalf("Failed to connect to DB: %v", err)
		}
		if err := repository.Migrate(context.Background(), database); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		rooms = repository.NewRoomRepository(database)
		bookings = repository.NewBookingRepository(database)
		logrus.WithField("store", "postgres").Info("Store initialized")
	} else {
		memoryRooms := repository.NewMemoryRoomStore(repository.DefaultRooms())
		rooms = memoryRooms
		bookings = repository.NewMemoryBookingStore(memoryRooms)
		logrus.WithField("store", "memory").Info("Store initialized")
	}

	notifier := service.NewNotifyService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	svc := service.NewBookingService(rooms, bookings, notifier)

	if cfg.RetentionDays > 0 {
		jobs := service.NewJobService(bookings, cfg.RetentionDays)
		c := cron.New()
		if _, err := c.AddFunc("0 3 * * *", func() {
			if err := jobs.PurgeExpiredBookings(context.Background()); err != nil {
				logrus.WithError(err).Error("Retention job failed")
			}
		}); err != nil {
			logrus.Fatalf("Failed to schedule retention job: %v", err)
		}
		c.Start()
	}

	router := api.NewRouter(svc)

	logrus.WithField("port", cfg.Port).Info("Server running")
	logrus.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
