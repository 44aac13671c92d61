package controllers

import (
	"context"
	"net/http"

	"github.com/farshadmz/storefront-backend/api/responses"
	"github.com/farshadmz/storefront-backend/internal/catalog"
)

// HomeService assembles the homepage payload.
type HomeService interface {
	HomeView(ctx context.Context) *catalog.HomeView
}

// Home serves the storefront landing payload. It never fails: the service
// degrades broken sections to empty values.
func Home(svc HomeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.HomeView(r.Context()))
	}
}
