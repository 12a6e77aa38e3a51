package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStoreUsecase_CreateStore_DuplicateName(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	stores.On("ExistsByOwnerAndName", mock.Anything, int64(1), "Pottery Shop", int64(0)).Return(true, nil)

	uc := usecase.NewStoreUsecase(stores, new(ProductRepoMock))

	_, err := uc.CreateStore(ctx, 1, usecase.StoreInput{Name: "Pottery Shop", Description: "hand made"})
	assertErrContains(t, err, "store already exists")
}

func TestStoreUsecase_CreateStore_MissingFields(t *testing.T) {
	uc := usecase.NewStoreUsecase(new(StoreRepoMock), new(ProductRepoMock))

	_, err := uc.CreateStore(context.Background(), 1, usecase.StoreInput{Name: "  ", Description: "x"})
	assertErrContains(t, err, "all fields are required")
}

func TestStoreUsecase_CreateStore_Success(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	stores.On("ExistsByOwnerAndName", mock.Anything, int64(1), "Pottery Shop", int64(0)).Return(false, nil)
	stores.On("Create", mock.Anything, mock.MatchedBy(func(s model.Store) bool {
		return s.OwnerUserID == 1 && s.Name == "Pottery Shop"
	})).Return(model.Store{ID: 2, OwnerUserID: 1, Name: "Pottery Shop"}, nil)

	uc := usecase.NewStoreUsecase(stores, new(ProductRepoMock))

	out, err := uc.CreateStore(ctx, 1, usecase.StoreInput{Name: "Pottery Shop", Description: "hand made"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.ID)

	stores.AssertExpectations(t)
}

func TestStoreUsecase_UpdateStore_DuplicateNameExcludesSelf(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	stores.On("FindByID", mock.Anything, int64(2)).Return(model.Store{ID: 2, OwnerUserID: 1, Name: "Old"}, nil)

	//自分自身(ID=2)は重複判定から外れる
	stores.On("ExistsByOwnerAndName", mock.Anything, int64(1), "Old", int64(2)).Return(false, nil)
	stores.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewStoreUsecase(stores, new(ProductRepoMock))

	err := uc.UpdateStore(ctx, 1, 2, usecase.StoreInput{Name: "Old", Description: "new description"})
	assert.NoError(t, err)

	stores.AssertExpectations(t)
}

func TestStoreUsecase_UpdateStore_NotOwner(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	stores.On("FindByID", mock.Anything, int64(2)).Return(model.Store{ID: 2, OwnerUserID: 42, Name: "Old"}, nil)

	uc := usecase.NewStoreUsecase(stores, new(ProductRepoMock))

	err := uc.UpdateStore(ctx, 1, 2, usecase.StoreInput{Name: "Old", Description: "x"})
	assertErrContains(t, err, "your own stores")
}

func TestStoreUsecase_DeleteStore_BlockedWhileProductsRemain(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	products := new(ProductRepoMock)

	stores.On("FindByID", mock.Anything, int64(2)).Return(model.Store{ID: 2, OwnerUserID: 1}, nil)
	products.On("CountByStoreID", mock.Anything, int64(2)).Return(int64(2), nil)

	uc := usecase.NewStoreUsecase(stores, products)

	err := uc.DeleteStore(ctx, 1, 2)
	assertErrContains(t, err, "cannot delete store with 2 products")

	stores.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestStoreUsecase_DeleteStore_EmptyStore(t *testing.T) {
	ctx := context.Background()

	stores := new(StoreRepoMock)
	products := new(ProductRepoMock)

	stores.On("FindByID", mock.Anything, int64(2)).Return(model.Store{ID: 2, OwnerUserID: 1}, nil)
	products.On("CountByStoreID", mock.Anything, int64(2)).Return(int64(0), nil)
	stores.On("Delete", mock.Anything, int64(2)).Return(nil)

	uc := usecase.NewStoreUsecase(stores, products)

	err := uc.DeleteStore(ctx, 1, 2)
	assert.NoError(t, err)

	stores.AssertExpectations(t)
}
