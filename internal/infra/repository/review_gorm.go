package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

// DI
func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// レビューの作成
func (r *ReviewGormRepository) Create(ctx context.Context, rev model.Review) (model.Review, error) {
	if err := r.db.WithContext(ctx).Create(&rev).Error; err != nil {
		return model.Review{}, err
	}
	return rev, nil
}

// 商品のレビューを新しい順で返す
func (r *ReviewGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	var reviews []model.Review

	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at desc").Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return []model.Review{}, err
	}

	return reviews, nil
}

// 同じ購入者・同じ商品のレビューが既にあるか
func (r *ReviewGormRepository) ExistsByBuyerAndProduct(ctx context.Context, buyerUserID int64, productID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("buyer_user_id = ? AND product_id = ?", buyerUserID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
