package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User backs the admin site. The storefront itself has no user-facing
// accounts; only the bootstrap command and admin tooling touch this table.
type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string    `gorm:"column:username;not null;uniqueIndex"`
	Email        string    `gorm:"column:email;not null;default:''"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	IsStaff      bool      `gorm:"column:is_staff;not null;default:false"`
	IsSuperuser  bool      `gorm:"column:is_superuser;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
