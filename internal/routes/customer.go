package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/authz"
	"quotation-system/internal/controllers"
	"quotation-system/pkg/constants"
)

func runCustomerRouter(secureGroup *echo.Group, customerCtrl *controllers.CustomerController, logger *zap.Logger) {
	salesOrAdmin := authz.RequireRoles(logger, constants.RoleAdmin, constants.RoleSales)
	{
		secureGroup.GET("/customers", customerCtrl.GetCustomers)
		secureGroup.GET("/customers/:id", customerCtrl.FindCustomer)
		secureGroup.POST("/customers", customerCtrl.CreateCustomer, salesOrAdmin)
		secureGroup.PUT("/customers/:id", customerCtrl.UpdateCustomer, salesOrAdmin)
		secureGroup.DELETE("/customers/:id", customerCtrl.DeleteCustomer,
			authz.RequireRoles(logger, constants.RoleAdmin))
	}
}
