package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zentraqms/zentra-api/internal/application/auth"
	appreps "github.com/zentraqms/zentra-api/internal/application/reps"
	"github.com/zentraqms/zentra-api/internal/application/usecase"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	FichaUC        *usecase.FichaUseCase
	SedeUC         *usecase.SedeUseCase
	CargoUC        *usecase.CargoUseCase
	OnboardingUC   *usecase.OnboardingUseCase
	UserUC         *usecase.UserUseCase
	RepsImportUC   *appreps.ImportUseCase
	RepsListUC     *appreps.ListUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	RepsEncoding   string
	RepsMaxMB      int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Motor NIT (público: lo consume el formulario de registro antes de autenticarse)
	nitGroup := api.Group("/nit")
	nitHandler := NewNITHandler()
	nitGroup.Post("/validate", nitHandler.Validate)
	nitGroup.Get("/:nit/digito", nitHandler.ComputeDigit)

	// Onboarding (público: crea la organización inicial)
	onboardingHandler := NewOnboardingHandler(deps.OnboardingUC)
	api.Post("/onboarding", onboardingHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las mutaciones exigen rol admin o coordinador; consulta solo lee.
	edit := RequireRole(entity.RoleAdmin, entity.RoleCoordinador)
	admin := RequireRole(entity.RoleAdmin)

	// Organizations
	organizations := protected.Group("/organizations")
	organizationHandler := NewOrganizationHandler(deps.OrganizationUC, deps.FichaUC)
	organizations.Get("/", organizationHandler.List)
	organizations.Post("/", edit, organizationHandler.Create)
	organizations.Get("/nit/:nit", organizationHandler.GetByNIT)
	organizations.Get("/:id", organizationHandler.GetByID)
	organizations.Put("/:id", edit, organizationHandler.Update)
	organizations.Delete("/:id", admin, organizationHandler.Delete)
	organizations.Get("/:id/ficha", organizationHandler.Ficha)

	// Sedes (anidadas bajo la organización para crear/listar)
	sedeHandler := NewSedeHandler(deps.SedeUC)
	organizations.Post("/:id/sedes", edit, sedeHandler.Create)
	organizations.Get("/:id/sedes", sedeHandler.List)
	sedes := protected.Group("/sedes")
	sedes.Get("/:id", sedeHandler.GetByID)
	sedes.Put("/:id", edit, sedeHandler.Update)
	sedes.Delete("/:id", admin, sedeHandler.Delete)

	// Cargos (organigrama)
	cargoHandler := NewCargoHandler(deps.CargoUC)
	organizations.Post("/:id/cargos", edit, cargoHandler.Create)
	organizations.Get("/:id/cargos", cargoHandler.List)
	cargos := protected.Group("/cargos")
	cargos.Get("/:id", cargoHandler.GetByID)
	cargos.Put("/:id", edit, cargoHandler.Update)
	cargos.Delete("/:id", admin, cargoHandler.Delete)

	// Users (administración: solo admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)

	// REPS (la importación reescribe el registro local: solo admin)
	repsGroup := protected.Group("/reps")
	repsHandler := NewRepsHandler(deps.RepsImportUC, deps.RepsListUC, deps.RepsEncoding, deps.RepsMaxMB)
	repsGroup.Get("/", repsHandler.List)
	repsGroup.Post("/import", admin, repsHandler.Import)
}
