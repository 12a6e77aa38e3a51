package model

import "time"

//出店者による在庫変更の履歴

type StockAdjustment struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    int64     `gorm:"not null;index" json:"product_id"`
	VendorUserID int64     `gorm:"not null;index" json:"vendor_user_id"`
	Delta        int64     `gorm:"not null" json:"delta"`
	Reason       string    `gorm:"type:varchar(255);not null" json:"reason"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
