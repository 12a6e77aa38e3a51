package model

import "time"

// 出店者のストア。
// 同じオーナーで同じ名前は不可（アプリ側で重複チェック）。
type Store struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerUserID int64     `gorm:"not null;index" json:"owner_user_id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
