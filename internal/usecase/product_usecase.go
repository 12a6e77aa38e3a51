package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo   repo.ProductRepository
	storeRepo     repo.StoreRepository
	reviewRepo    repo.ReviewRepository
	orderItemRepo repo.OrderItemRepository
	inventoryRepo repo.InventoryRepository
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	storeRepo repo.StoreRepository,
	reviewRepo repo.ReviewRepository,
	orderItemRepo repo.OrderItemRepository,
	inventoryRepo repo.InventoryRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		storeRepo:     storeRepo,
		reviewRepo:    reviewRepo,
		orderItemRepo: orderItemRepo,
		inventoryRepo: inventoryRepo,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page  int
	Limit int
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:  in.Page,
		Limit: in.Limit,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// 商品詳細。レビュー一覧と、ログイン中の購入者向けのフラグも返す。
type ProductDetailOutput struct {
	Product model.Product  `json:"product"`
	Reviews []model.Review `json:"reviews"`

	//viewerUserIDが0のときは常にfalse
	AlreadyReviewed bool `json:"already_reviewed"`
	HasPurchased    bool `json:"has_purchased"`
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64, viewerUserID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := ProductDetailOutput{
		Product: p,
		Reviews: reviews,
	}

	//未ログインならフラグはfalseのまま
	if viewerUserID > 0 {
		reviewed, err := u.reviewRepo.ExistsByBuyerAndProduct(ctx, viewerUserID, productID)
		if err != nil {
			return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		purchased, err := u.orderItemRepo.ExistsPurchase(ctx, viewerUserID, productID)
		if err != nil {
			return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out.AlreadyReviewed = reviewed
		out.HasPurchased = purchased
	}

	return out, nil
}

// ===== 出店者側の商品管理 =====

type VendorProductInput struct {
	Name        string
	Description string
	Price       int64
	Stock       int64
}

// 共通の入力チェック
func validateVendorProductInput(in VendorProductInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" {
		return NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be greater than 0")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock cannot be negative")
	}
	return nil
}

// ストアの所有チェック付きで商品を追加
func (u *ProductUsecase) AddProduct(ctx context.Context, vendorUserID int64, storeID int64, in VendorProductInput) (model.Product, error) {
	if vendorUserID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if storeID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid store id")
	}
	if err := validateVendorProductInput(in); err != nil {
		return model.Product{}, err
	}

	s, err := u.storeRepo.FindByID(ctx, storeID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人のストアには追加できない
	if s.OwnerUserID != vendorUserID {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "you can only add products to your own stores")
	}

	now := time.Now()
	created, err := u.productRepo.Create(ctx, model.Product{
		StoreID:     storeID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

// 出店者の全ストアの商品一覧
func (u *ProductUsecase) ListVendorProducts(ctx context.Context, vendorUserID int64) ([]model.Product, error) {
	if vendorUserID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.productRepo.ListByOwnerUserID(ctx, vendorUserID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return items, nil
}

// 所有チェック付きの商品更新。在庫が変わったら調整履歴を残す。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, vendorUserID int64, productID int64, in VendorProductInput) error {
	if vendorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateVendorProductInput(in); err != nil {
		return err
	}

	p, err := u.findOwnedProduct(ctx, vendorUserID, productID, "you can only edit your own products")
	if err != nil {
		return err
	}

	oldStock := p.Stock

	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.Price = in.Price
	p.Stock = in.Stock

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//在庫変更は履歴に残す（失敗しても更新自体は成立）
	if in.Stock != oldStock {
		_ = u.inventoryRepo.CreateAdjustment(ctx, model.StockAdjustment{
			ProductID:    productID,
			VendorUserID: vendorUserID,
			Delta:        in.Stock - oldStock,
			Reason:       "vendor edit",
		})
	}

	return nil
}

// 所有チェック付きの商品削除
func (u *ProductUsecase) DeleteProduct(ctx context.Context, vendorUserID int64, productID int64) error {
	if vendorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if _, err := u.findOwnedProduct(ctx, vendorUserID, productID, "you can only delete your own products"); err != nil {
		return err
	}

	if err := u.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// 商品を取得して、そのストアのオーナーが本人か確認する。
func (u *ProductUsecase) findOwnedProduct(ctx context.Context, vendorUserID int64, productID int64, forbiddenMsg string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	s, err := u.storeRepo.FindByID(ctx, p.StoreID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if s.OwnerUserID != vendorUserID {
		return model.Product{}, NewHTTPError(http.StatusForbidden, forbiddenMsg)
	}

	return p, nil
}
