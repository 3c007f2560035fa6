package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	UserID       uint64         `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Name         string         `gorm:"column:name;size:50;not null" json:"name"`
	Email        string         `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;size:255;not null" json:"-"`
	Bio          string         `gorm:"column:bio;type:text" json:"bio"`
	ProfileImage string         `gorm:"column:profile_image;size:64" json:"profile_image"` // GridFS file id
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
