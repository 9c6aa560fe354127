package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/application/auth"
	"github.com/tu-usuario/gympro-api/internal/application/usecase"
	"github.com/tu-usuario/gympro-api/internal/domain/entity"
	"github.com/tu-usuario/gympro-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	AddressUC      *usecase.AddressUseCase
	DescriptionUC  *usecase.DescriptionUseCase
	ExerciseUC     *usecase.ExerciseUseCase
	TrainingRoomUC *usecase.TrainingRoomUseCase
	UserUC         *usecase.UserUseCase
	Users          repository.UserRepository
	JWTSecret      string
	Translator     *ErrorTranslator
}

// Router registra las rutas de la API. Cada grupo protegido pasa primero por
// AuthMiddleware y cada ruta declara los roles que la pueden usar.
func Router(app *fiber.App, deps RouterDeps) {
	tr := deps.Translator

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, tr)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	authRequired := AuthMiddleware(deps.JWTSecret, deps.Users, tr)

	// Addresses (protegido)
	addresses := app.Group("/address", authRequired)
	addressHandler := NewAddressHandler(deps.AddressUC, tr)
	addresses.Post("/", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleCustomer), addressHandler.Create)
	addresses.Get("/", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner, entity.RoleCustomer), addressHandler.List)
	addresses.Get("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner, entity.RoleCustomer), addressHandler.GetByID)
	addresses.Put("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner), addressHandler.Update)
	addresses.Delete("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner), addressHandler.Delete)

	// Descriptions (protegido)
	descriptions := app.Group("/description", authRequired)
	descriptionHandler := NewDescriptionHandler(deps.DescriptionUC, tr)
	descriptions.Post("/", RequireRole(tr, entity.RoleOwner), descriptionHandler.Create)
	descriptions.Get("/", RequireRole(tr, entity.RoleSuperAdmin), descriptionHandler.List)
	descriptions.Get("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner), descriptionHandler.GetByID)
	descriptions.Put("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner), descriptionHandler.Update)
	descriptions.Delete("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner), descriptionHandler.Delete)

	// Exercises (protegido)
	exercises := app.Group("/exercise", authRequired, RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner))
	exerciseHandler := NewExerciseHandler(deps.ExerciseUC, tr)
	exercises.Post("/", exerciseHandler.Create)
	exercises.Get("/", exerciseHandler.List)
	exercises.Get("/:id", exerciseHandler.GetByID)
	exercises.Put("/:id", exerciseHandler.Update)
	exercises.Delete("/:id", exerciseHandler.Delete)

	// Training rooms (protegido)
	rooms := app.Group("/training-room", authRequired)
	roomHandler := NewTrainingRoomHandler(deps.TrainingRoomUC, tr)
	rooms.Post("/", RequireRole(tr, entity.RoleSuperAdmin), roomHandler.Create)
	rooms.Get("/", RequireRole(tr, entity.RoleSuperAdmin), roomHandler.List)
	rooms.Get("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner), roomHandler.GetByID)
	rooms.Put("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner), roomHandler.Update)
	rooms.Delete("/:id", RequireRole(tr, entity.RoleSuperAdmin, entity.RoleOwner), roomHandler.Delete)

	// Users (protegido)
	users := app.Group("/user", authRequired)
	userHandler := NewUserHandler(deps.UserUC, tr)
	users.Get("/", RequireRole(tr, entity.RoleSuperAdmin), userHandler.List)
	users.Get("/:id", RequireRole(tr, entity.RoleCustomer), userHandler.GetByID)
	users.Put("/:id", RequireRole(tr, entity.RoleCustomer), userHandler.Update)
	users.Delete("/:id", RequireRole(tr, entity.RoleSuperAdmin), userHandler.Delete)
}
