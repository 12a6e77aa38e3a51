package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review model.Review) (model.Review, error)

	//商品のレビューを新しい順で返す
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)

	//同じ購入者が同じ商品を既にレビューしているか
	ExistsByBuyerAndProduct(ctx context.Context, buyerUserID int64, productID int64) (bool, error)
}
