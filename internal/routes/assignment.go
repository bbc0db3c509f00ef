package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/authz"
	"quotation-system/internal/controllers"
	"quotation-system/pkg/constants"
)

func runAssignmentRouter(secureGroup *echo.Group, assignmentCtrl *controllers.AssignmentController, logger *zap.Logger) {
	// Назначать позиции могут руководители (VPP) и администраторы.
	canAssign := authz.RequireRoles(logger, constants.RoleAdmin, constants.RoleVPP)
	{
		secureGroup.GET("/board", assignmentCtrl.GetBoard)
		secureGroup.GET("/board/workloads", assignmentCtrl.GetWorkloads)
		secureGroup.POST("/board/filters", assignmentCtrl.SetFilters)
		secureGroup.POST("/board/refresh", assignmentCtrl.RefreshBoard)
		secureGroup.POST("/board/assign", assignmentCtrl.AssignItems, canAssign)
	}
}
