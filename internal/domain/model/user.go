package model

import "time"

type Role string

const (
	//出店者（ストアと商品を管理する）
	RoleVendor Role = "VENDOR"
	//購入者（買い物・注文・レビュー）
	RoleBuyer Role = "BUYER"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         Role   `gorm:"type:varchar(20);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
