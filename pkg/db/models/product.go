package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog listing. Public views only ever read it; creation and
// edits happen through admin tooling.
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Slug        string          `gorm:"column:slug;not null;uniqueIndex"`
	Description string          `gorm:"column:description;not null;default:''"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	CategoryID  *uuid.UUID      `gorm:"column:category_id;type:uuid"`
	Category    *Category       `gorm:"foreignKey:CategoryID"`
	InStock     bool            `gorm:"column:in_stock;not null;default:true"`
	Rating      float64         `gorm:"column:rating;type:numeric(3,2);not null;default:0"`
	ReviewCount int             `gorm:"column:review_count;not null;default:0"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an ID when the dialect cannot (sqlite in tests).
func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
