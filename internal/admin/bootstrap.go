package admin

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/farshadmz/storefront-backend/pkg/config"
	"github.com/farshadmz/storefront-backend/pkg/db"
	"github.com/farshadmz/storefront-backend/pkg/db/models"
	pkgerrors "github.com/farshadmz/storefront-backend/pkg/errors"
	"github.com/farshadmz/storefront-backend/pkg/logger"
	"github.com/farshadmz/storefront-backend/pkg/security"
	"gorm.io/gorm"
)

// Outcome reports what the bootstrap run did.
type Outcome string

const (
	// OutcomeSkippedNoPassword means no password was configured, so no
	// account was touched. Deliberately not an error: release hooks run the
	// command unconditionally and environments without the secret must not
	// fail their deploy.
	OutcomeSkippedNoPassword Outcome = "skipped_no_password"
	// OutcomeCreated means a fresh admin account was created.
	OutcomeCreated Outcome = "created"
	// OutcomeUpgraded means the username existed without admin rights and
	// was promoted.
	OutcomeUpgraded Outcome = "upgraded"
	// OutcomeAlreadyAdmin means a superuser already exists, so nothing was
	// changed.
	OutcomeAlreadyAdmin Outcome = "already_admin"
)

// Bootstrapper ensures a single admin account exists. Safe to run on every
// deploy: reruns converge on the same state.
type Bootstrapper struct {
	client   *db.Client
	logg     *logger.Logger
	admin    config.AdminBootstrapConfig
	password config.PasswordConfig
}

func NewBootstrapper(client *db.Client, logg *logger.Logger, admin config.AdminBootstrapConfig, password config.PasswordConfig) *Bootstrapper {
	return &Bootstrapper{client: client, logg: logg, admin: admin, password: password}
}

// EnsureAdmin creates or promotes the configured admin account inside one
// transaction, so concurrent deploy hooks cannot race each other into
// duplicate accounts.
func (b *Bootstrapper) EnsureAdmin(ctx context.Context) (Outcome, error) {
	username := strings.TrimSpace(b.admin.Username)
	if username == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "admin username cannot be empty")
	}

	if strings.TrimSpace(b.admin.Password) == "" {
		b.logg.Warn(ctx, "no admin password configured, skipping bootstrap")
		return OutcomeSkippedNoPassword, nil
	}

	outcome := OutcomeCreated
	err := b.client.WithTx(ctx, func(tx *gorm.DB) error {
		// Any superuser at all means the deployment is already bootstrapped.
		var superusers int64
		if err := tx.Model(&models.User{}).Where("is_superuser = ?", true).Count(&superusers).Error; err != nil {
			return err
		}
		if superusers > 0 {
			outcome = OutcomeAlreadyAdmin
			return nil
		}

		hash, hashErr := security.HashPassword(b.admin.Password, b.password)
		if hashErr != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, hashErr, "hash admin password")
		}

		var existing models.User
		err := tx.First(&existing, "username = ?", username).Error
		switch {
		case err == nil:
			// The username is taken by a regular account: promote it and
			// hand it the configured credentials.
			outcome = OutcomeUpgraded
			updates := map[string]any{
				"is_staff":      true,
				"is_superuser":  true,
				"password_hash": hash,
			}
			if email := strings.TrimSpace(b.admin.Email); email != "" {
				updates["email"] = email
			}
			return tx.Model(&existing).Updates(updates).Error
		case stdErrors.Is(err, gorm.ErrRecordNotFound):
			user := models.User{
				Username:     username,
				Email:        strings.TrimSpace(b.admin.Email),
				PasswordHash: hash,
				IsStaff:      true,
				IsSuperuser:  true,
			}
			return tx.Create(&user).Error
		default:
			return err
		}
	})
	if err != nil {
		if db.IsUniqueViolation(err, "users_username_key") {
			// A concurrent run created the account between our lookup and
			// insert. The desired state holds either way.
			b.logg.Info(b.logg.WithField(ctx, "username", username), "admin account created by concurrent run")
			return OutcomeAlreadyAdmin, nil
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "ensure admin account")
	}

	ctx = b.logg.WithFields(ctx, map[string]any{
		"username": username,
		"outcome":  string(outcome),
	})
	switch outcome {
	case OutcomeUpgraded:
		// Promotion of an existing account is worth an audit trail entry.
		b.logg.Warn(ctx, "existing account promoted to admin")
	default:
		b.logg.Info(ctx, "admin bootstrap complete")
	}

	return outcome, nil
}
