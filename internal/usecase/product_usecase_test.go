package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUsecaseForTest(
	products *ProductRepoMock,
	stores *StoreRepoMock,
	reviews *ReviewRepoMock,
	orderItems *OrderItemRepoMock,
	inventory *InventoryRepoMock,
) *usecase.ProductUsecase {
	return usecase.NewProductUsecase(products, stores, reviews, orderItems, inventory)
}

func TestProductUsecase_AddProduct_RejectsZeroPrice(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProductRepoMock), new(StoreRepoMock), new(ReviewRepoMock), new(OrderItemRepoMock), new(InventoryRepoMock))

	_, err := uc.AddProduct(context.Background(), 1, 2, usecase.VendorProductInput{
		Name: "Mug", Description: "ceramic", Price: 0, Stock: 3,
	})
	assertErrContains(t, err, "price must be greater than 0")
}

func TestProductUsecase_AddProduct_RejectsNegativeStock(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProductRepoMock), new(StoreRepoMock), new(ReviewRepoMock), new(OrderItemRepoMock), new(InventoryRepoMock))

	_, err := uc.AddProduct(context.Background(), 1, 2, usecase.VendorProductInput{
		Name: "Mug", Description: "ceramic", Price: 1200, Stock: -1,
	})
	assertErrContains(t, err, "stock cannot be negative")
}

func TestProductUsecase_AddProduct_OtherVendorsStore(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	stores.On("FindByID", mock.Anything, int64(2)).Return(model.Store{ID: 2, OwnerUserID: 42}, nil)

	uc := newProductUsecaseForTest(new(ProductRepoMock), stores, new(ReviewRepoMock), new(OrderItemRepoMock), new(InventoryRepoMock))

	_, err := uc.AddProduct(ctx, 1, 2, usecase.VendorProductInput{
		Name: "Mug", Description: "ceramic", Price: 1200, Stock: 3,
	})
	assertErrContains(t, err, "your own stores")
}

func TestProductUsecase_AddProduct_Success(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	products := new(ProductRepoMock)

	stores.On("FindByID", mock.Anything, int64(2)).Return(model.Store{ID: 2, OwnerUserID: 1}, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.StoreID == 2 && p.Name == "Mug" && p.Price == 1200 && p.Stock == 3
	})).Return(model.Product{ID: 10, StoreID: 2, Name: "Mug", Price: 1200, Stock: 3}, nil)

	uc := newProductUsecaseForTest(products, stores, new(ReviewRepoMock), new(OrderItemRepoMock), new(InventoryRepoMock))

	out, err := uc.AddProduct(ctx, 1, 2, usecase.VendorProductInput{
		Name: "Mug", Description: "ceramic", Price: 1200, Stock: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)

	products.AssertExpectations(t)
}

func TestProductUsecase_UpdateProduct_RecordsStockAdjustment(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	products := new(ProductRepoMock)
	inventory := new(InventoryRepoMock)

	products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, StoreID: 2, Name: "Mug", Price: 1200, Stock: 3}, nil)
	stores.On("FindByID", mock.Anything, int64(2)).Return(model.Store{ID: 2, OwnerUserID: 1}, nil)
	products.On("Update", mock.Anything, mock.Anything).Return(nil)

	inventory.On("CreateAdjustment", mock.Anything, mock.MatchedBy(func(a model.StockAdjustment) bool {
		return a.ProductID == 10 && a.VendorUserID == 1 && a.Delta == 5
	})).Return(nil)

	uc := newProductUsecaseForTest(products, stores, new(ReviewRepoMock), new(OrderItemRepoMock), inventory)

	err := uc.UpdateProduct(ctx, 1, 10, usecase.VendorProductInput{
		Name: "Mug", Description: "ceramic", Price: 1200, Stock: 8,
	})
	assert.NoError(t, err)

	inventory.AssertExpectations(t)
}

func TestProductUsecase_GetProductDetail_AnonymousViewer(t *testing.T) {
	ctx := context.Background()

	products := new(ProductRepoMock)
	reviews := new(ReviewRepoMock)

	products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "Mug"}, nil)
	reviews.On("ListByProductID", mock.Anything, int64(10)).Return([]model.Review{
		{ID: 1, ProductID: 10, Rating: 5, Content: "great", Verified: true},
	}, nil)

	uc := newProductUsecaseForTest(products, new(StoreRepoMock), reviews, new(OrderItemRepoMock), new(InventoryRepoMock))

	out, err := uc.GetProductDetail(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Reviews))
	assert.False(t, out.AlreadyReviewed)
	assert.False(t, out.HasPurchased)
}

func TestProductUsecase_GetProductDetail_BuyerFlags(t *testing.T) {
	ctx := context.Background()

	products := new(ProductRepoMock)
	reviews := new(ReviewRepoMock)
	orderItems := new(OrderItemRepoMock)

	products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "Mug"}, nil)
	reviews.On("ListByProductID", mock.Anything, int64(10)).Return([]model.Review{}, nil)
	reviews.On("ExistsByBuyerAndProduct", mock.Anything, int64(1), int64(10)).Return(false, nil)
	orderItems.On("ExistsPurchase", mock.Anything, int64(1), int64(10)).Return(true, nil)

	uc := newProductUsecaseForTest(products, new(StoreRepoMock), reviews, orderItems, new(InventoryRepoMock))

	out, err := uc.GetProductDetail(ctx, 10, 1)
	assert.NoError(t, err)
	assert.False(t, out.AlreadyReviewed)
	assert.True(t, out.HasPurchased)
}

func TestProductUsecase_ListPublicProducts_InvalidLimit(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProductRepoMock), new(StoreRepoMock), new(ReviewRepoMock), new(OrderItemRepoMock), new(InventoryRepoMock))

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 0})
	assertErrContains(t, err, "invalid limit")
}
