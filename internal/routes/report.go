package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/authz"
	"quotation-system/internal/controllers"
	"quotation-system/pkg/constants"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController, logger *zap.Logger) {
	secureGroup.GET("/reports/items", reportCtrl.ExportItems,
		authz.RequireRoles(logger, constants.RoleAdmin, constants.RoleVPP))
}
