package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/profile"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Profiles *profile.Service
	Verifier TokenVerifier
	Metrics  *Metrics
	Gatherer prometheus.Gatherer // nil = sin /metrics
	Log      *logger.Logger      // nil = sin log de peticiones
}

// Router registra las rutas de la API. Mismos paths que el API Gateway de producción.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log.Component("http")))
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	if deps.Gatherer != nil {
		app.Get("/metrics", MetricsHandler(deps.Gatherer))
	}

	// Rutas protegidas (requieren Bearer Token)
	auth := AuthMiddleware(deps.Verifier)
	profileHandler := NewProfileHandler(deps.Profiles)

	users := app.Group("/users", auth)
	users.Get("/profile", profileHandler.GetProfile)
	users.Post("/profile", profileHandler.CreateProfile)
	users.Put("/profile", profileHandler.UpdateProfile)

	users.Get("/vet/:userId", profileHandler.GetVetProfile)
	users.Post("/vet", RequireProfileRole(deps.Profiles, entity.RoleVet), profileHandler.CreateVetProfile)

	users.Get("/shelter/:userId", profileHandler.GetShelterProfile)
	users.Post("/shelter", RequireProfileRole(deps.Profiles, entity.RoleShelter), profileHandler.CreateShelterProfile)

	pets := app.Group("/pets", auth)
	petHandler := NewPetHandler(deps.Profiles)
	pets.Get("/", petHandler.List)
	pets.Post("/", petHandler.Create)
}
