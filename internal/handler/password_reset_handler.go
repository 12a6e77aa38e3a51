package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// パスワード再設定のHTTP
type PasswordResetHandler struct {
	uc *usecase.PasswordResetUsecase
}

// DI
func NewPasswordResetHandler(uc *usecase.PasswordResetUsecase) *PasswordResetHandler {
	return &PasswordResetHandler{uc: uc}
}

func (h *PasswordResetHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/password-reset", h.request)
	e.POST("/auth/password-reset/:token", h.confirm)
}

func (h *PasswordResetHandler) request(c echo.Context) error {
	var req usecase.PasswordResetRequestInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	msg, err := h.uc.Request(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": msg})
}

func (h *PasswordResetHandler) confirm(c echo.Context) error {
	token := c.Param("token")

	var req usecase.PasswordResetConfirmInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Confirm(c.Request().Context(), token, req); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "password has been reset"})
}
