package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/school-intake/api"
	"github.com/sahilchouksey/school-intake/config"
	"github.com/sahilchouksey/school-intake/database"
	"github.com/sahilchouksey/school-intake/router"
	"github.com/sahilchouksey/school-intake/services/cron"
	"github.com/sahilchouksey/school-intake/utils"
)

const shutdownTimeout = 10 * time.Second

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	utils.ConfigureLogger(getEnv.IsProduction())

	// Open the persistence handle, shared by every request
	store, err := database.StartGORM(getEnv)
	if err != nil {
		return fmt.Errorf("open %s database: %w", getEnv.DB_DRIVER, err)
	}

	if err := store.Init(); err != nil {
		_ = store.Close()
		return fmt.Errorf("initialize database tables: %w", err)
	}

	// Store maintenance, on unless CRON_ENABLED=false
	var cronManager *cron.CronManager
	if getEnv.CRON_ENABLED {
		cronManager = cron.NewCronManager(store.GetDB(), getEnv.WAL_CHECKPOINT_SCHEDULE)
		if err := cronManager.Start(); err != nil {
			// Don't fail the app, just log the warning
			log.Warnf("Failed to start cron jobs: %v", err)
			cronManager = nil
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if err := store.Close(); err != nil {
			log.Errorf("Error closing database: %v", err)
		}
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes
	router.SetupRoutes(app, store, getEnv)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		if err := server.Shutdown(shutdownTimeout); err != nil {
			log.Errorf("Error during shutdown: %v", err)
		}
	}()

	return server.Run()
}
