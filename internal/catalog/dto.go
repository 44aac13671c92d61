package catalog

import (
	"time"

	"github.com/farshadmz/storefront-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySummary is the listing-facing category payload.
type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProductSummary is the card-sized product payload used by the homepage and
// the listing grid.
type ProductSummary struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Price       decimal.Decimal  `json:"price"`
	Category    *CategorySummary `json:"category,omitempty"`
	InStock     bool             `json:"in_stock"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"review_count"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ProductDetail adds the long-form fields to the summary payload.
type ProductDetail struct {
	ProductSummary
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HomeContent is the editable copy block shown on the storefront homepage.
type HomeContent struct {
	Title     string `json:"title"`
	Tagline   string `json:"tagline"`
	AboutText string `json:"about_text"`
}

// HomeView aggregates everything the homepage renders in one response.
type HomeView struct {
	Content          *HomeContent      `json:"content"`
	FeaturedProducts []ProductSummary  `json:"featured_products"`
	Categories       []CategorySummary `json:"categories"`
}

// AppliedFilters echoes the listing criteria that were actually applied.
type AppliedFilters struct {
	Category  string   `json:"category,omitempty"`
	Search    string   `json:"search,omitempty"`
	MaxPrice  *string  `json:"max_price,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
	InStock   bool     `json:"in_stock"`
	Sort      string   `json:"sort"`
}

// ProductPage is a single page of listing results.
type ProductPage struct {
	Products   []ProductSummary  `json:"products"`
	Categories []CategorySummary `json:"categories"`
	Filters    AppliedFilters    `json:"filters"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

func toCategorySummary(category *models.Category) *CategorySummary {
	if category == nil || category.ID == uuid.Nil {
		return nil
	}
	return &CategorySummary{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}

func toProductSummary(product models.Product) ProductSummary {
	summary := ProductSummary{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Price:       product.Price,
		InStock:     product.InStock,
		Rating:      product.Rating,
		ReviewCount: product.ReviewCount,
		CreatedAt:   product.CreatedAt,
	}
	if product.CategoryID != nil {
		summary.Category = toCategorySummary(product.Category)
	}
	return summary
}

func toProductDetail(product *models.Product) *ProductDetail {
	return &ProductDetail{
		ProductSummary: toProductSummary(*product),
		Description:    product.Description,
		UpdatedAt:      product.UpdatedAt,
	}
}

func toProductSummaries(products []models.Product) []ProductSummary {
	summaries := make([]ProductSummary, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, toProductSummary(product))
	}
	return summaries
}

func toCategorySummaries(categories []models.Category) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(categories))
	for i := range categories {
		if summary := toCategorySummary(&categories[i]); summary != nil {
			summaries = append(summaries, *summary)
		}
	}
	return summaries
}
