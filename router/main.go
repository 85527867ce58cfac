package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/school-intake/config"
	"github.com/sahilchouksey/school-intake/database"
	"github.com/sahilchouksey/school-intake/handlers"
	admission_handlers "github.com/sahilchouksey/school-intake/handlers/admission"
	fee_handlers "github.com/sahilchouksey/school-intake/handlers/fee"
	"github.com/sahilchouksey/school-intake/services"
	"github.com/sahilchouksey/school-intake/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage, env *config.EnvironmentVariable) {
	// Services share the single persistence handle
	admissionHandler := admission_handlers.NewAdmissionHandler(services.NewAdmissionService(store))
	feeHandler := fee_handlers.NewFeeHandler(services.NewFeeService(store))

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:   env.ALLOWED_ORIGINS,
		EnableStackTrace: !env.IsProduction(),
	})

	api := app.Group("/api")

	// Health check endpoint
	api.Get("/health", handlers.HandleCheckHealth)

	// Intake endpoints
	api.Post("/admissions", admissionHandler.SubmitAdmission)
	api.Post("/fees", feeHandler.SubmitFee)
}
