package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/authz"
	"quotation-system/internal/controllers"
	"quotation-system/pkg/constants"
)

func runUserRouter(secureGroup *echo.Group, userCtrl *controllers.UserController, logger *zap.Logger) {
	adminOnly := authz.RequireRoles(logger, constants.RoleAdmin)
	{
		secureGroup.GET("/users", userCtrl.GetUsers, adminOnly)
		secureGroup.POST("/users", userCtrl.CreateUser, adminOnly)
		secureGroup.GET("/users/assignees", userCtrl.GetAssignees)
		secureGroup.GET("/users/:id", userCtrl.FindUser)
	}
}
