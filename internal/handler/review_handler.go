package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	uc  *usecase.ReviewUsecase
	cfg config.Config
}

// DI
func NewReviewHandler(uc *usecase.ReviewUsecase, cfg config.Config) *ReviewHandler {
	return &ReviewHandler{uc: uc, cfg: cfg}
}

type PostReviewRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// レビュー投稿は購入者のみ
func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/products/:id/reviews", h.post,
		middleware.AuthJWT(h.cfg),
		middleware.RoleGuard(model.RoleBuyer),
	)
}

func (h *ReviewHandler) post(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req PostReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PostReview(c.Request().Context(), userID, productID, usecase.PostReviewInput{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
