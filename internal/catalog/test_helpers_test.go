package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/farshadmz/storefront-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:catalog_%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := conn.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.HomePage{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := conn.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return conn
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: slug}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category %s: %v", slug, err)
	}
	return category
}

type productSeed struct {
	Name        string
	Slug        string
	Description string
	Price       string
	Category    *models.Category
	InStock     bool
	Rating      float64
	ReviewCount int
	CreatedAt   time.Time
}

func seedProduct(t *testing.T, db *gorm.DB, seed productSeed) *models.Product {
	t.Helper()

	price, err := decimal.NewFromString(seed.Price)
	if err != nil {
		t.Fatalf("bad seed price %q: %v", seed.Price, err)
	}

	product := &models.Product{
		Name:        seed.Name,
		Slug:        seed.Slug,
		Description: seed.Description,
		Price:       price,
		InStock:     seed.InStock,
		Rating:      seed.Rating,
		ReviewCount: seed.ReviewCount,
	}
	if seed.Category != nil {
		product.CategoryID = &seed.Category.ID
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product %s: %v", seed.Slug, err)
	}

	if !seed.CreatedAt.IsZero() {
		if err := db.Model(product).Update("created_at", seed.CreatedAt).Error; err != nil {
			t.Fatalf("backdate product %s: %v", seed.Slug, err)
		}
		product.CreatedAt = seed.CreatedAt
	}

	return product
}

func seedHomePage(t *testing.T, db *gorm.DB, title string, active bool, createdAt time.Time) *models.HomePage {
	t.Helper()

	page := &models.HomePage{
		Title:     title,
		Tagline:   "handmade goods",
		AboutText: "about " + title,
		IsActive:  active,
	}
	if err := db.Create(page).Error; err != nil {
		t.Fatalf("seed homepage %s: %v", title, err)
	}
	if !createdAt.IsZero() {
		if err := db.Model(page).Update("created_at", createdAt).Error; err != nil {
			t.Fatalf("backdate homepage %s: %v", title, err)
		}
		page.CreatedAt = createdAt
	}
	return page
}

func slugsOf(products []models.Product) []string {
	slugs := make([]string, 0, len(products))
	for _, p := range products {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

func summarySlugs(products []ProductSummary) []string {
	slugs := make([]string, 0, len(products))
	for _, p := range products {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}
