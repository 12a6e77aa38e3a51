package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo    repo.ReviewRepository
	productRepo   repo.ProductRepository
	orderItemRepo repo.OrderItemRepository
}

// DI
func NewReviewUsecase(
	reviewRepo repo.ReviewRepository,
	productRepo repo.ProductRepository,
	orderItemRepo repo.OrderItemRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:    reviewRepo,
		productRepo:   productRepo,
		orderItemRepo: orderItemRepo,
	}
}

type PostReviewInput struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// 1商品につき1人1件。購入履歴があればverifiedを付ける。
func (u *ReviewUsecase) PostReview(ctx context.Context, buyerUserID int64, productID int64, in PostReviewInput) (model.Review, error) {
	if buyerUserID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if strings.TrimSpace(in.Content) == "" {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "content is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	exists, err := u.reviewRepo.ExistsByBuyerAndProduct(ctx, buyerUserID, productID)
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return model.Review{}, NewHTTPError(http.StatusConflict, "already reviewed")
	}

	verified, err := u.orderItemRepo.ExistsPurchase(ctx, buyerUserID, productID)
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID:   productID,
		BuyerUserID: buyerUserID,
		Content:     strings.TrimSpace(in.Content),
		Rating:      in.Rating,
		Verified:    verified,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}
