package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/authz"
	"quotation-system/internal/controllers"
	"quotation-system/pkg/constants"
)

func runQuoteRouter(secureGroup *echo.Group, quoteCtrl *controllers.QuoteController, logger *zap.Logger) {
	secureGroup.GET("/quotes", quoteCtrl.GetQuotes)
	secureGroup.GET("/quotes/:id", quoteCtrl.FindQuote)
	secureGroup.POST("/quotes", quoteCtrl.CreateQuote,
		authz.RequireRoles(logger, constants.RoleAdmin, constants.RoleSales))
}
