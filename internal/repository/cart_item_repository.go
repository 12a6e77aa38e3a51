package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 明細は(cart, product)で一意。操作はすべて商品IDで行う。
type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error)
	// 同一商品はプラス
	UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartID int64, productID int64, qty int64) error
	//無ければ何もしない（冪等）
	DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error
}
