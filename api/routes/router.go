package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/farshadmz/storefront-backend/api/controllers"
	"github.com/farshadmz/storefront-backend/api/middleware"
	"github.com/farshadmz/storefront-backend/internal/catalog"
	"github.com/farshadmz/storefront-backend/internal/inquiries"
	"github.com/farshadmz/storefront-backend/pkg/config"
	"github.com/farshadmz/storefront-backend/pkg/db"
	"github.com/farshadmz/storefront-backend/pkg/logger"
	"github.com/farshadmz/storefront-backend/pkg/metrics"
	"github.com/farshadmz/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	catalogService *catalog.Service,
	inquiryService *inquiries.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	submitPolicy := middleware.NewSubmitRateLimitPolicy(
		"submit",
		cfg.SubmitLimit.Window,
		cfg.SubmitLimit.IPLimit,
	)
	submitLimiter := middleware.SubmitRateLimit(submitPolicy, limiterStore(redisClient), logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"db":    dbP,
			"redis": redisPinger(redisClient),
		}))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/", controllers.Home(catalogService))
	r.Route("/products", func(r chi.Router) {
		r.Get("/", controllers.ProductList(catalogService, logg))
		r.Get("/{slug}", controllers.ProductDetail(catalogService, logg))
		r.With(submitLimiter).Post("/{slug}/inquiry", controllers.ProductInquiry(inquiryService, logg))
	})
	r.Route("/contact", func(r chi.Router) {
		r.Get("/", controllers.ContactInfo(cfg))
		r.With(submitLimiter).Post("/", controllers.ContactSubmit(inquiryService, logg))
	})

	return r
}

// limiterStore narrows the optional Redis client to the rate limiter
// interface, keeping the interface nil when Redis is disabled.
func limiterStore(client *redis.Client) middleware.RateLimiterStore {
	if client == nil {
		return nil
	}
	return client
}

func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
