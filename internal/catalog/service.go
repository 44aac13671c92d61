package catalog

import (
	"context"
	stdErrors "errors"

	pkgerrors "github.com/farshadmz/storefront-backend/pkg/errors"
	"github.com/farshadmz/storefront-backend/pkg/db/models"
	"github.com/farshadmz/storefront-backend/pkg/logger"
	"github.com/farshadmz/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Store describes the persistence surface the catalog service depends on.
type Store interface {
	ActiveHomePage(ctx context.Context) (*models.HomePage, error)
	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	HomeCategories(ctx context.Context) ([]models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)
	FindProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListProducts(ctx context.Context, filters ListFilters, page pagination.Params) ([]models.Product, int64, error)
}

// Service exposes the public read paths of the catalog.
type Service struct {
	store Store
	logg  *logger.Logger
}

func NewService(store Store, logg *logger.Logger) *Service {
	return &Service{store: store, logg: logg}
}

// HomeView assembles the homepage. Each section degrades independently: a
// failed lookup logs a warning and renders empty instead of failing the page.
func (s *Service) HomeView(ctx context.Context) *HomeView {
	view := &HomeView{
		FeaturedProducts: []ProductSummary{},
		Categories:       []CategorySummary{},
	}

	page, err := s.store.ActiveHomePage(ctx)
	switch {
	case err == nil:
		view.Content = &HomeContent{
			Title:     page.Title,
			Tagline:   page.Tagline,
			AboutText: page.AboutText,
		}
	case stdErrors.Is(err, gorm.ErrRecordNotFound):
		// No active row configured yet; the client renders its fallback copy.
	default:
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "homepage content lookup failed")
	}

	if products, err := s.store.FeaturedProducts(ctx); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "featured products lookup failed")
	} else {
		view.FeaturedProducts = toProductSummaries(products)
	}

	if categories, err := s.store.HomeCategories(ctx); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "homepage categories lookup failed")
	} else {
		view.Categories = toCategorySummaries(categories)
	}

	return view
}

// List returns one page of products matching the filters, plus the category
// set for the filter sidebar. Unlike the homepage this does not degrade: a
// storage failure fails the request.
func (s *Service) List(ctx context.Context, filters ListFilters, page pagination.Params) (*ProductPage, error) {
	products, total, err := s.store.ListProducts(ctx, filters, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}

	return &ProductPage{
		Products:   toProductSummaries(products),
		Categories: toCategorySummaries(categories),
		Filters:    filters.Applied(),
		Total:      total,
		Page:       pagination.NormalizePage(page.Page),
		PageSize:   page.PageSize(),
	}, nil
}

// GetBySlug loads a single product detail view.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*ProductDetail, error) {
	product, err := s.store.FindProductBySlug(ctx, slug)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return toProductDetail(product), nil
}
