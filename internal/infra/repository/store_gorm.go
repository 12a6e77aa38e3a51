package repository

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type StoreGormRepository struct {
	db *gorm.DB
}

// DI
func NewStoreGormRepository(db *gorm.DB) *StoreGormRepository {
	return &StoreGormRepository{db: db}
}

// ストアの作成
func (r *StoreGormRepository) Create(ctx context.Context, s model.Store) (model.Store, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Store{}, err
	}
	return s, nil
}

// オーナーのストアを新しい順で返す
func (r *StoreGormRepository) ListByOwnerUserID(ctx context.Context, ownerUserID int64) ([]model.Store, error) {
	var stores []model.Store

	err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at desc").Order("id desc").
		Find(&stores).Error
	if err != nil {
		return []model.Store{}, err
	}

	return stores, nil
}

// IDでストアを取得
func (r *StoreGormRepository) FindByID(ctx context.Context, storeID int64) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).First(&s, storeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Store{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Store{}, err
	}
	return s, nil
}

// ストアの更新
func (r *StoreGormRepository) Update(ctx context.Context, s model.Store) error {
	res := r.db.WithContext(ctx).Model(&model.Store{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":        s.Name,
		"description": s.Description,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ストア削除
func (r *StoreGormRepository) Delete(ctx context.Context, storeID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Store{}, storeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 同じオーナー・同じ名前のストアがあるか
func (r *StoreGormRepository) ExistsByOwnerAndName(ctx context.Context, ownerUserID int64, name string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Store{}).
		Where("owner_user_id = ? AND name = ?", ownerUserID, strings.TrimSpace(name))

	//編集中の自分は除外する
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
