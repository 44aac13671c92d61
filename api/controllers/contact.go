package controllers

import (
	"context"
	"net/http"

	"github.com/farshadmz/storefront-backend/api/responses"
	"github.com/farshadmz/storefront-backend/api/validators"
	"github.com/farshadmz/storefront-backend/internal/inquiries"
	"github.com/farshadmz/storefront-backend/pkg/config"
	"github.com/farshadmz/storefront-backend/pkg/logger"
)

// ContactService accepts general contact messages.
type ContactService interface {
	SubmitContact(ctx context.Context, req inquiries.ContactRequest) (*inquiries.SubmissionResult, error)
}

// ContactInfo serves the details the contact page renders.
func ContactInfo(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"store_owner_email": cfg.Contact.OwnerEmail,
		})
	}
}

// ContactSubmit accepts a general contact message. Like the inquiry form,
// field validation misses come back as success=false, not transport errors.
func ContactSubmit(svc ContactService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req inquiries.ContactRequest
		if err := validators.DecodeSubmission(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.SubmitContact(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
