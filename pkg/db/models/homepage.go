package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HomePage holds the editable landing page content. At most one row is
// expected to be active; the schema does not enforce exclusivity, so readers
// must pick deterministically (oldest active first).
type HomePage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	Tagline   string    `gorm:"column:tagline;not null;default:''"`
	AboutText string    `gorm:"column:about_text;not null;default:''"`
	IsActive  bool      `gorm:"column:is_active;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (h *HomePage) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
