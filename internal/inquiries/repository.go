package inquiries

import (
	"context"

	"github.com/farshadmz/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists order inquiries. Rows are append-only: the shop owner
// reads them out of band and nothing in the API mutates them.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreateInquiry inserts a new inquiry row.
func (r *Repository) CreateInquiry(ctx context.Context, inquiry *models.OrderInquiry) (*models.OrderInquiry, error) {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return nil, err
	}
	return inquiry, nil
}

// FindProductBySlug resolves the inquiry target.
func (r *Repository) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
