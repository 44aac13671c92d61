package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/farshadmz/storefront-backend/api/responses"
	pkgerrors "github.com/farshadmz/storefront-backend/pkg/errors"
	"github.com/farshadmz/storefront-backend/pkg/logger"
)

// RateLimiterStore is the counter backend, satisfied by the Redis client.
type RateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// SubmitRateLimitPolicy throttles a public form surface per client IP.
type SubmitRateLimitPolicy struct {
	name    string
	window  time.Duration
	ipLimit int
}

// NewSubmitRateLimitPolicy builds a policy with the supplied window and limit.
func NewSubmitRateLimitPolicy(name string, window time.Duration, ipLimit int) SubmitRateLimitPolicy {
	return SubmitRateLimitPolicy{
		name:    strings.ToLower(strings.TrimSpace(name)),
		window:  window,
		ipLimit: ipLimit,
	}
}

func (p SubmitRateLimitPolicy) enabled() bool {
	return p.window > 0 && p.ipLimit > 0
}

func (p SubmitRateLimitPolicy) normalizedName() string {
	if p.name == "" {
		return "submit"
	}
	return p.name
}

func (p SubmitRateLimitPolicy) ipKey(ip string) string {
	if ip == "" {
		return ""
	}
	return fmt.Sprintf("rl:ip:%s:%s", p.normalizedName(), ip)
}

// SubmitRateLimit enforces a per-IP counter on form submission endpoints.
// With no store configured (Redis disabled) it passes traffic through.
func SubmitRateLimit(policy SubmitRateLimitPolicy, store RateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			key := policy.ipKey(ip)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			count, err := store.IncrWithTTL(ctx, key, policy.window)
			if err != nil {
				responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
				return
			}
			if count > int64(policy.ipLimit) {
				if logg != nil {
					logCtx := logg.WithFields(ctx, map[string]any{
						"policy":         policy.normalizedName(),
						"ip":             ip,
						"attempts":       count,
						"limit":          policy.ipLimit,
						"window_seconds": int(policy.window.Seconds()),
					})
					logg.Warn(logCtx, "submit.rate_limit.blocked")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many submissions, try again later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
