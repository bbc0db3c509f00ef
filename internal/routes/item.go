package routes

import (
	"github.com/labstack/echo/v4"

	"quotation-system/internal/controllers"
)

// Маршруты позиций. Проверка "только назначенный исполнитель или ADMIN"
// живет в сервисе, а не в маршруте: ей нужна сама позиция.
func runItemRouter(secureGroup *echo.Group, itemCtrl *controllers.ItemController) {
	secureGroup.GET("/items", itemCtrl.GetItems)
	secureGroup.GET("/items/:id", itemCtrl.FindItem)
	secureGroup.POST("/items/:id/start", itemCtrl.StartProgress)
	secureGroup.PUT("/items/:id/costing", itemCtrl.SaveCosting)
	secureGroup.POST("/items/:id/approve", itemCtrl.ApproveItem)
}
