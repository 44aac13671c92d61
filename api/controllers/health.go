package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/farshadmz/storefront-backend/api/responses"
	"github.com/farshadmz/storefront-backend/pkg/config"
	pkgerrors "github.com/farshadmz/storefront-backend/pkg/errors"
	"github.com/farshadmz/storefront-backend/pkg/logger"
	"go.uber.org/multierr"
)

const readinessTimeout = 5 * time.Second

// Pinger is implemented by every dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks every wired dependency; nil pingers are skipped so the
// probe works with optional components (Redis) disabled.
func HealthReady(cfg *config.Config, logg *logger.Logger, pingers map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		var combined error
		failed := []string{}
		for name, pinger := range pingers {
			if pinger == nil {
				continue
			}
			if err := pinger.Ping(ctx); err != nil {
				combined = multierr.Append(combined, err)
				failed = append(failed, name)
			}
		}

		if combined != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed").
				WithDetails(map[string]any{"failed": failed})
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
