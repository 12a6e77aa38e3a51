package model

import "time"

// 価格は最小通貨単位のint64で持つ。
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID     int64     `gorm:"not null;index" json:"store_id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Stock       int64     `gorm:"not null" json:"stock"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
