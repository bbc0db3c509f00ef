package authz

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "quotation-system/pkg/errors"
	"quotation-system/pkg/utils"
)

// RequireRoles пропускает запрос только для перечисленных ролей.
// Вешается после AuthMiddleware, который кладет роль в контекст.
func RequireRoles(logger *zap.Logger, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := utils.GetUserRoleFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err), logger)
			}

			if _, ok := allowed[role]; !ok {
				logger.Warn("Доступ запрещен по роли",
					zap.String("role", role),
					zap.String("path", c.Path()))
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusForbidden, apperrors.ErrForbidden.Error(), apperrors.ErrForbidden), logger)
			}
			return next(c)
		}
	}
}
