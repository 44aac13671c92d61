package catalog

import (
	"context"
	"strings"

	"github.com/farshadmz/storefront-backend/pkg/db/models"
	"github.com/farshadmz/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

const (
	featuredProductLimit = 8
	homeCategoryLimit    = 6
)

// Repository wires together catalog persistence: products, categories, and
// the homepage content rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ActiveHomePage returns the oldest active homepage row. More than one active
// row can exist; taking the oldest keeps the pick stable across requests.
func (r *Repository) ActiveHomePage(ctx context.Context) (*models.HomePage, error) {
	var page models.HomePage
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		First(&page).
		Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// FeaturedProducts returns the homepage product strip: the shop's
// best-reviewed items, newest first among ties.
func (r *Repository) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("review_count DESC, rating DESC, created_at DESC").
		Limit(featuredProductLimit).
		Find(&rows).
		Error
	return rows, err
}

// HomeCategories returns the short category strip shown on the homepage.
func (r *Repository) HomeCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(homeCategoryLimit).
		Find(&rows).
		Error
	return rows, err
}

// Categories returns every category, for the listing page's filter sidebar.
func (r *Repository) Categories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).
		Error
	return rows, err
}

// FindCategoryBySlug loads a single category.
func (r *Repository) FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindProductBySlug loads a product with its category for the detail page.
func (r *Repository) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "slug = ?", slug).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts applies the filters conjunctively, counts the full match set,
// then returns one page in the requested order.
func (r *Repository) ListProducts(ctx context.Context, filters ListFilters, page pagination.Params) ([]models.Product, int64, error) {
	qb := r.db.WithContext(ctx).Model(&models.Product{})

	if filters.CategorySlug != "" {
		qb = qb.Where(
			"category_id IN (SELECT id FROM categories WHERE slug = ?)",
			filters.CategorySlug,
		)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where(
			"(LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ? OR category_id IN (SELECT id FROM categories WHERE LOWER(name) LIKE ?))",
			pattern, pattern, pattern,
		)
	}
	if filters.MaxPrice != nil {
		qb = qb.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.MinRating != nil {
		qb = qb.Where("rating >= ?", *filters.MinRating)
	}
	if filters.InStockOnly {
		qb = qb.Where("in_stock = ?", true)
	}

	// Count on a session clone so the count select does not leak into the
	// page query below.
	var total int64
	if err := qb.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Product
	err := qb.
		Preload("Category").
		Order(filters.Sort.OrderClause()).
		Offset(page.Offset()).
		Limit(page.PageSize()).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
