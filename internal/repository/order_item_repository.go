package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	//購入履歴の有無（レビューのverified判定に使う）
	ExistsPurchase(ctx context.Context, buyerUserID int64, productID int64) (bool, error)
}
