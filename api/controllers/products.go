package controllers

import (
	"context"
	"net/http"

	"github.com/farshadmz/storefront-backend/api/responses"
	"github.com/farshadmz/storefront-backend/api/validators"
	"github.com/farshadmz/storefront-backend/internal/catalog"
	"github.com/farshadmz/storefront-backend/internal/inquiries"
	pkgerrors "github.com/farshadmz/storefront-backend/pkg/errors"
	"github.com/farshadmz/storefront-backend/pkg/logger"
	"github.com/farshadmz/storefront-backend/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

// CatalogService exposes the catalog read paths the product controllers use.
type CatalogService interface {
	List(ctx context.Context, filters catalog.ListFilters, page pagination.Params) (*catalog.ProductPage, error)
	GetBySlug(ctx context.Context, slug string) (*catalog.ProductDetail, error)
}

// InquiryService accepts contact-for-order submissions.
type InquiryService interface {
	SubmitInquiry(ctx context.Context, slug string, req inquiries.InquiryRequest) (*inquiries.SubmissionResult, error)
}

// ProductList serves the filterable, sortable catalog listing.
func ProductList(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 10000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		filters := catalog.ParseListFilters(r.URL.Query())
		result, err := svc.List(ctx, filters, pagination.Params{Page: page, Limit: limit})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProductDetail serves a single product by slug.
func ProductDetail(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required"))
			return
		}

		detail, err := svc.GetBySlug(ctx, slug)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// ProductInquiry accepts a contact-for-order submission for the product. A
// validation miss is a 200 with success=false so the form can re-render; only
// unknown products and storage failures surface as errors.
func ProductInquiry(svc InquiryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required"))
			return
		}

		var req inquiries.InquiryRequest
		if err := validators.DecodeSubmission(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.SubmitInquiry(ctx, slug, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
