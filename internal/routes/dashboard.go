package routes

import (
	"github.com/labstack/echo/v4"

	"quotation-system/internal/controllers"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController) {
	secureGroup.GET("/dashboard/stats", dashboardCtrl.GetStats)
}
