package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderInquiry records a customer's interest in a product. Append-only: rows
// are never updated or deleted once written.
type OrderInquiry struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Product   *Product  `gorm:"foreignKey:ProductID"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null"`
	Phone     string    `gorm:"column:phone;not null;default:''"`
	Message   string    `gorm:"column:message;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (o *OrderInquiry) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
