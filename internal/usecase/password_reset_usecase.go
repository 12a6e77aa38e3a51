package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/mailer"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// 再設定リンクの有効期限
const resetTokenTTL = 5 * time.Minute

// メール送信の約束（Dispatcherが満たす。テストでは記録用フェイク）
type MailEnqueuer interface {
	Enqueue(msg mailer.Message)
}

// 結果を漏らさないための固定メッセージ
const resetRequestedMessage = "if that email exists, a reset link has been sent"

type PasswordResetRequestInput struct {
	Email string `json:"email"`
}

type PasswordResetConfirmInput struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type PasswordResetUsecase struct {
	cfg    config.Config
	users  repository.UserRepository
	tokens repository.PasswordResetTokenRepository
	mails  MailEnqueuer
}

func NewPasswordResetUsecase(
	cfg config.Config,
	users repository.UserRepository,
	tokens repository.PasswordResetTokenRepository,
	mails MailEnqueuer,
) *PasswordResetUsecase {
	return &PasswordResetUsecase{
		cfg:    cfg,
		users:  users,
		tokens: tokens,
		mails:  mails,
	}
}

// Request は再設定を受け付ける。
// メールの有無にかかわらず同じメッセージを返す（存在の推測をさせない）。
func (u *PasswordResetUsecase) Request(ctx context.Context, in PasswordResetRequestInput) (string, error) {
	if in.Email == "" {
		return "", NewHTTPError(http.StatusBadRequest, "email is required")
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		//存在しなくても同じ返事
		return resetRequestedMessage, nil
	}

	//平文トークンはメールだけに載せ、DBにはハッシュを保存
	rawToken, tokenHash, err := newResetToken()
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := time.Now()
	t := &model.PasswordResetToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: now.Add(resetTokenTTL),
		Used:      false,
		CreatedAt: now,
	}

	if err := u.tokens.Create(ctx, t); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//送信はDispatcher任せ（失敗してもこの処理は成功のまま）
	resetURL := fmt.Sprintf("%s/auth/password-reset/%s", u.cfg.AppBaseURL, rawToken)
	u.mails.Enqueue(mailer.Message{
		To:      user.Email,
		Subject: "Password Reset Request",
		Body:    buildResetMailBody(resetURL),
	})

	return resetRequestedMessage, nil
}

// Confirm はトークンを検証して新しいパスワードを保存する。
// トークンは使い切り（成功後の再利用は失敗する）。
func (u *PasswordResetUsecase) Confirm(ctx context.Context, rawToken string, in PasswordResetConfirmInput) error {
	if rawToken == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid or expired reset link")
	}

	//URLの平文トークンをハッシュにして照合
	tokenHash := hashResetToken(rawToken)

	t, err := u.tokens.FindByTokenHash(ctx, tokenHash)
	if errors.Is(err, repository.ErrResetTokenNotFound) {
		return NewHTTPError(http.StatusBadRequest, "invalid or expired reset link")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//未使用かつ期限内か
	if !t.IsValid(time.Now()) {
		return NewHTTPError(http.StatusBadRequest, "this reset link has expired or been used")
	}

	//パスワード検証
	if in.Password == "" || in.PasswordConfirm == "" {
		return NewHTTPError(http.StatusBadRequest, "both password fields are required")
	}
	if in.Password != in.PasswordConfirm {
		return NewHTTPError(http.StatusBadRequest, "passwords do not match")
	}
	if len(in.Password) < 8 {
		return NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	user, err := u.users.FindByID(ctx, t.UserID)
	if err != nil || user == nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user.PasswordHash = string(pwHash)
	if err := u.users.Update(ctx, user); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//使用済みにする
	if err := u.tokens.MarkUsed(ctx, t.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// ランダムトークン（平文）とsha256ハッシュ（hex）を作る。
func newResetToken() (string, string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}

	raw := base64.RawURLEncoding.EncodeToString(b)
	return raw, hashResetToken(raw), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func buildResetMailBody(resetURL string) string {
	return fmt.Sprintf(`Hello,

You requested a password reset for your account.

Click the link below to reset your password:
%s

This link will expire in 5 minutes.

If you didn't request this reset, please ignore this email.

Best regards,
The Storefront Team
`, resetURL)
}
