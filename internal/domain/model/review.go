package model

import "time"

// 商品レビュー。
// (buyer, product)の組につき1件まで（アプリ側で存在チェック）。
// verifiedは投稿時点で購入履歴があったかどうか。
type Review struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64     `gorm:"not null;index" json:"product_id"`
	BuyerUserID int64     `gorm:"not null;index" json:"buyer_user_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Rating      int       `gorm:"not null" json:"rating"`
	Verified    bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
