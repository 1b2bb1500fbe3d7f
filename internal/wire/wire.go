// Package wire provides dependency injection for the fleetdeck
// application. It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"

	"github.com/example/fleetdeck/internal/adapters/sqlite"
	"github.com/example/fleetdeck/internal/adapters/storage"
	"github.com/example/fleetdeck/internal/app"
	"github.com/example/fleetdeck/internal/db"
	"github.com/example/fleetdeck/internal/ports/primary"
)

var (
	authService         primary.AuthService
	fleetService        primary.FleetService
	jobService          primary.JobService
	notificationService primary.NotificationService
	dashboardService    primary.DashboardService
	once                sync.Once
)

// AuthService returns the singleton AuthService instance.
func AuthService() primary.AuthService {
	once.Do(initServices)
	return authService
}

// FleetService returns the singleton FleetService instance.
func FleetService() primary.FleetService {
	once.Do(initServices)
	return fleetService
}

// JobService returns the singleton JobService instance.
func JobService() primary.JobService {
	once.Do(initServices)
	return jobService
}

// NotificationService returns the singleton NotificationService instance.
func NotificationService() primary.NotificationService {
	once.Do(initServices)
	return notificationService
}

// DashboardService returns the singleton DashboardService instance.
func DashboardService() primary.DashboardService {
	once.Do(initServices)
	return dashboardService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	store := sqlite.NewStore(database)

	// First-run seeding; never overwrites existing collections.
	if err := db.SeedFixtures(context.Background(), store); err != nil {
		log.Fatalf("failed to seed collections: %v", err)
	}

	shipRepo := storage.NewShipRepository(store)
	componentRepo := storage.NewComponentRepository(store)
	jobRepo := storage.NewJobRepository(store)
	notificationRepo := storage.NewNotificationRepository(store)
	userRepo := storage.NewUserRepository(store)
	sessionStore := storage.NewSessionStore(store)

	authService = app.NewAuthService(userRepo, sessionStore)
	fleetService = app.NewFleetService(shipRepo, componentRepo)
	jobService = app.NewJobService(jobRepo, notificationRepo)
	notificationService = app.NewNotificationService(notificationRepo)
	dashboardService = app.NewDashboardService(shipRepo, componentRepo, jobRepo)
}
