package middleware

import (
	"net/http"

	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleが要求ロールと一致するかを確認します。

func RoleGuard(required model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//要求ロール以外は拒否
			if role != string(required) {
				if required == model.RoleVendor {
					return c.JSON(http.StatusForbidden, errorJSON("vendor only"))
				}
				return c.JSON(http.StatusForbidden, errorJSON("buyer only"))
			}

			return next(c)
		}
	}
}
