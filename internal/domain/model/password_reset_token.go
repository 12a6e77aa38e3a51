package model

import "time"

// パスワード再設定トークン。
// DBにはsha256ハッシュだけを保存する（平文トークンはメールのみ）。
// 有効＝未使用かつ現在時刻が期限前。使い切り。
type PasswordResetToken struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	TokenHash string    `json:"-" gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	Used      bool      `json:"used" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

// 未使用かつ期限内かどうか。
func (t *PasswordResetToken) IsValid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
