package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	repo "storefront/internal/repository"
)

type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartLineOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CartOutput struct {
	Items      []CartLineOutput `json:"items"`
	TotalPrice int64            `json:"total_price"`
}

func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartOutput, error) {
	if userID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartOutput(ctx, cart.ID)
}

// 追加数量は最低1に切り上げ。既存分と合わせて在庫を超えないこと。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, productID int64, quantity int64) (CartOutput, error) {
	if userID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		quantity = 1
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var existing int64
	item, err := u.cartItemRepo.FindByCartAndProduct(ctx, cart.ID, productID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err == nil {
		existing = item.Quantity
	}

	if existing+quantity > p.Stock {
		return CartOutput{}, NewHTTPError(http.StatusConflict, fmt.Sprintf("only %d units available", p.Stock))
	}

	if err := u.cartItemRepo.UpsertByCartAndProduct(ctx, cart.ID, productID, quantity); err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartOutput(ctx, cart.ID)
}

// 数量の直接指定。1未満はエラー、カートに無ければ何もしない。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, productID int64, quantity int64) (CartOutput, error) {
	if userID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_, err = u.cartItemRepo.FindByCartAndProduct(ctx, cart.ID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		//カートに無い商品は静かに無視
		return u.buildCartOutput(ctx, cart.ID)
	}
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == nil && quantity > p.Stock {
		return CartOutput{}, NewHTTPError(http.StatusConflict, fmt.Sprintf("only %d units available", p.Stock))
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cart.ID, productID, quantity); err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartOutput(ctx, cart.ID)
}

// 削除は冪等
func (u *CartUsecase) RemoveFromCart(ctx context.Context, userID int64, productID int64) (CartOutput, error) {
	if userID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.DeleteByCartAndProduct(ctx, cart.ID, productID); err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartOutput(ctx, cart.ID)
}

func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// 現在価格で小計を組み立てる。商品が消えていた行は落としてカートからも外す。
func (u *CartUsecase) buildCartOutput(ctx context.Context, cartID int64) (CartOutput, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := CartOutput{Items: []CartLineOutput{}}
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			_ = u.cartItemRepo.DeleteByCartAndProduct(ctx, cartID, it.ProductID)
			continue
		}
		if err != nil {
			return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		subtotal := p.Price * it.Quantity
		out.Items = append(out.Items, CartLineOutput{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
			Subtotal:  subtotal,
		})
		out.TotalPrice += subtotal
	}

	return out, nil
}
