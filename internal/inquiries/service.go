package inquiries

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/farshadmz/storefront-backend/pkg/db/models"
	pkgerrors "github.com/farshadmz/storefront-backend/pkg/errors"
	"github.com/farshadmz/storefront-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store describes the persistence surface the inquiry service depends on.
type Store interface {
	CreateInquiry(ctx context.Context, inquiry *models.OrderInquiry) (*models.OrderInquiry, error)
	FindProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

// InquiryRequest carries the contact-for-order form fields.
type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactRequest carries the general contact form fields.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmissionResult reports a form outcome. Success and Error are mutually
// exclusive; validation failures are results, not transport errors, so the
// page can re-render the form with the message.
type SubmissionResult struct {
	Success   bool       `json:"success"`
	Error     string     `json:"error,omitempty"`
	InquiryID *uuid.UUID `json:"inquiry_id,omitempty"`
}

// Service handles the storefront's two public forms.
type Service struct {
	store      Store
	logg       *logger.Logger
	ownerEmail string
}

func NewService(store Store, logg *logger.Logger, ownerEmail string) *Service {
	return &Service{store: store, logg: logg, ownerEmail: ownerEmail}
}

// SubmitInquiry validates and persists a contact-for-order request against
// the product identified by slug.
func (s *Service) SubmitInquiry(ctx context.Context, slug string, req InquiryRequest) (*SubmissionResult, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return &SubmissionResult{Error: "Please provide your name and email."}, nil
	}

	product, err := s.store.FindProductBySlug(ctx, slug)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product for inquiry")
	}

	inquiry := &models.OrderInquiry{
		ProductID: product.ID,
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Message:   strings.TrimSpace(req.Message),
	}
	if _, err := s.store.CreateInquiry(ctx, inquiry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist inquiry")
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"inquiry_id":   inquiry.ID.String(),
		"product_slug": product.Slug,
	}), "order inquiry received")

	id := inquiry.ID
	return &SubmissionResult{Success: true, InquiryID: &id}, nil
}

// SubmitContact validates a general contact message. Nothing is persisted;
// the message is surfaced to the shop owner through the logs, which is where
// outbound notifications for this deployment end up.
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest) (*SubmissionResult, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return &SubmissionResult{Error: "Please fill in all fields."}, nil
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"owner_email": s.ownerEmail,
		"from_name":   name,
		"from_email":  email,
		"message":     message,
	}), "contact message received")

	return &SubmissionResult{Success: true}, nil
}
