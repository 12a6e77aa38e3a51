package model

import "time"

// total_priceは作成時点の明細小計の合計。
type Order struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerUserID int64     `gorm:"not null;index" json:"buyer_user_id"`
	TotalPrice  int64     `gorm:"not null" json:"total_price"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
