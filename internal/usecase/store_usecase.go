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

type StoreUsecase struct {
	storeRepo   repo.StoreRepository
	productRepo repo.ProductRepository
}

// DI
func NewStoreUsecase(storeRepo repo.StoreRepository, productRepo repo.ProductRepository) *StoreUsecase {
	return &StoreUsecase{
		storeRepo:   storeRepo,
		productRepo: productRepo,
	}
}

type StoreInput struct {
	Name        string
	Description string
}

func validateStoreInput(in StoreInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" {
		return NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	return nil
}

// 同じオーナーの同名ストアは不可
func (u *StoreUsecase) CreateStore(ctx context.Context, ownerUserID int64, in StoreInput) (model.Store, error) {
	if ownerUserID <= 0 {
		return model.Store{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateStoreInput(in); err != nil {
		return model.Store{}, err
	}

	name := strings.TrimSpace(in.Name)

	exists, err := u.storeRepo.ExistsByOwnerAndName(ctx, ownerUserID, name, 0)
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return model.Store{}, NewHTTPError(http.StatusConflict, "store already exists")
	}

	now := time.Now()
	created, err := u.storeRepo.Create(ctx, model.Store{
		OwnerUserID: ownerUserID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

func (u *StoreUsecase) ListMyStores(ctx context.Context, ownerUserID int64) ([]model.Store, error) {
	if ownerUserID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	stores, err := u.storeRepo.ListByOwnerUserID(ctx, ownerUserID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return stores, nil
}

type StoreDetailOutput struct {
	Store    model.Store     `json:"store"`
	Products []model.Product `json:"products"`
}

func (u *StoreUsecase) GetMyStoreDetail(ctx context.Context, ownerUserID int64, storeID int64) (StoreDetailOutput, error) {
	s, err := u.findOwnedStore(ctx, ownerUserID, storeID, "you can only view your own stores")
	if err != nil {
		return StoreDetailOutput{}, err
	}

	products, err := u.productRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		return StoreDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return StoreDetailOutput{Store: s, Products: products}, nil
}

func (u *StoreUsecase) UpdateStore(ctx context.Context, ownerUserID int64, storeID int64, in StoreInput) error {
	if err := validateStoreInput(in); err != nil {
		return err
	}

	s, err := u.findOwnedStore(ctx, ownerUserID, storeID, "you can only edit your own stores")
	if err != nil {
		return err
	}

	name := strings.TrimSpace(in.Name)

	//自分自身は除いて重複チェック
	exists, err := u.storeRepo.ExistsByOwnerAndName(ctx, ownerUserID, name, storeID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return NewHTTPError(http.StatusConflict, "store already exists")
	}

	s.Name = name
	s.Description = strings.TrimSpace(in.Description)

	if err := u.storeRepo.Update(ctx, s); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// 商品が残っているストアは削除不可
func (u *StoreUsecase) DeleteStore(ctx context.Context, ownerUserID int64, storeID int64) error {
	if _, err := u.findOwnedStore(ctx, ownerUserID, storeID, "you can only delete your own stores"); err != nil {
		return err
	}

	count, err := u.productRepo.CountByStoreID(ctx, storeID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return NewHTTPError(http.StatusConflict, fmt.Sprintf("cannot delete store with %d products", count))
	}

	if err := u.storeRepo.Delete(ctx, storeID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

func (u *StoreUsecase) findOwnedStore(ctx context.Context, ownerUserID int64, storeID int64, forbiddenMsg string) (model.Store, error) {
	if ownerUserID <= 0 {
		return model.Store{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if storeID <= 0 {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "invalid store id")
	}

	s, err := u.storeRepo.FindByID(ctx, storeID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if s.OwnerUserID != ownerUserID {
		return model.Store{}, NewHTTPError(http.StatusForbidden, forbiddenMsg)
	}

	return s, nil
}
