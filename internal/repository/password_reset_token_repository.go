package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrResetTokenNotFound = errors.New("reset token not found")

// 再設定トークンの保存・取得・使用済み化
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.PasswordResetToken, error)
	MarkUsed(ctx context.Context, tokenID string) error
}
