package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	domainrepo "storefront/internal/repository"

	"gorm.io/gorm"
)

type passwordResetTokenGormRepository struct {
	db *gorm.DB
}

// DI
func NewPasswordResetTokenGormRepository(db *gorm.DB) domainrepo.PasswordResetTokenRepository {
	return &passwordResetTokenGormRepository{db: db}
}

// トークンを新規保存
func (r *passwordResetTokenGormRepository) Create(ctx context.Context, token *model.PasswordResetToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return err
	}
	return nil
}

// ハッシュでトークンを1件取得
func (r *passwordResetTokenGormRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.PasswordResetToken, error) {
	var t model.PasswordResetToken

	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&t).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainrepo.ErrResetTokenNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// 使用済みにする（使い切り）
func (r *passwordResetTokenGormRepository) MarkUsed(ctx context.Context, tokenID string) error {
	res := r.db.WithContext(ctx).
		Model(&model.PasswordResetToken{}).
		Where("id = ?", tokenID).
		Update("used", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrResetTokenNotFound
	}
	return nil
}
