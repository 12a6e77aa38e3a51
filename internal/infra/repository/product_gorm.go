package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 公開商品を新しい順・ページング付きで返す。
func (r *ProductGormRepository) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := tx.Order("created_at desc").Order("id desc").
		Offset(offset).Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// ストア内の商品を新しい順で返す
func (r *ProductGormRepository) ListByStoreID(ctx context.Context, storeID int64) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").Order("id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// オーナーの全ストアの商品を返す
func (r *ProductGormRepository) ListByOwnerUserID(ctx context.Context, ownerUserID int64) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Joins("join stores on stores.id = products.store_id").
		Where("stores.owner_user_id = ?", ownerUserID).
		Order("products.created_at desc").Order("products.id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// ストア内の商品数（ストア削除の事前チェックに使う）
func (r *ProductGormRepository) CountByStoreID(ctx context.Context, storeID int64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
