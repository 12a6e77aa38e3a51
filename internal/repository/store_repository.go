package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ストアを保存・取得する窓口
type StoreRepository interface {
	//ストアを新規作成する。作成後はIDが埋まったものを返す
	Create(ctx context.Context, store model.Store) (model.Store, error)

	//オーナーが持つストア一覧を返す
	ListByOwnerUserID(ctx context.Context, ownerUserID int64) ([]model.Store, error)

	//ストアIDから1件取得
	FindByID(ctx context.Context, storeID int64) (model.Store, error)

	//ストアの更新。
	Update(ctx context.Context, store model.Store) error

	//ストアの削除。
	Delete(ctx context.Context, storeID int64) error

	//同じオーナー・同じ名前のストアがあるか（excludeIDは編集中の自分を除外する。0なら除外なし）
	ExistsByOwnerAndName(ctx context.Context, ownerUserID int64, name string, excludeID int64) (bool, error)
}
