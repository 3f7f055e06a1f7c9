package routes

import (
	"academy_backend/internal/auth"
	"academy_backend/internal/handlers"
	"academy_backend/internal/logger"
	"academy_backend/internal/middleware"
	"academy_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route. All API endpoints live under
// /api/v1/auth; only login and superadmin registration skip the token
// gate.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	uploadsDir string,
) {
	ginRouter.GET("/healthz", handlers.Healthz)

	// Uploaded files are served statically, videos from a subtree.
	ginRouter.Static("/uploads", uploadsDir)

	authGate := middleware.AuthMiddleware(tokens)
	superAdminOnly := middleware.RequireRoles(models.UserRoleSuperAdmin)
	trainerOnly := middleware.RequireRoles(models.UserRoleTrainer)

	api := ginRouter.Group("/api/v1/auth")
	{
		api.POST("/register-superadmin", appHandlers.Auth.RegisterSuperAdmin)
		api.POST("/login", appHandlers.Auth.Login)

		api.GET("/me", authGate, appHandlers.Auth.Me)

		api.POST("/register-trainer", authGate, superAdminOnly, appHandlers.Trainer.Register)
		api.GET("/trainers", authGate, appHandlers.Trainer.ListNames)
		api.GET("/all-trainers", authGate, superAdminOnly, appHandlers.Trainer.ListAll)
		api.PUT("/trainer/:id", authGate, superAdminOnly, appHandlers.Trainer.Update)
		api.DELETE("/trainer/:id", authGate, superAdminOnly, appHandlers.Trainer.Delete)

		api.POST("/register-student", authGate, superAdminOnly, appHandlers.Student.Register)
		api.GET("/all-students", authGate, superAdminOnly, appHandlers.Student.ListAll)
		api.PUT("/student/:id", authGate, superAdminOnly, appHandlers.Student.Update)
		api.DELETE("/student/:id", authGate, superAdminOnly, appHandlers.Student.Delete)
		api.GET("/students-by-course", authGate, trainerOnly, appHandlers.Student.ByTrainerCourse)

		api.POST("/upload-video", authGate, trainerOnly, appHandlers.Video.Upload)
		api.DELETE("/delete-video", authGate, appHandlers.Video.Delete)
	}

	logger.Info("HTTP routes registered", "base_path", "/api/v1/auth")
}
