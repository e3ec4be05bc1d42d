package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jpbelardo/tindahan-backend/api/controllers"
	"github.com/jpbelardo/tindahan-backend/api/controllers/compositions"
	"github.com/jpbelardo/tindahan-backend/api/middleware"
	"github.com/jpbelardo/tindahan-backend/internal/catalog"
	"github.com/jpbelardo/tindahan-backend/internal/composer"
	"github.com/jpbelardo/tindahan-backend/pkg/config"
	"github.com/jpbelardo/tindahan-backend/pkg/db"
	"github.com/jpbelardo/tindahan-backend/pkg/logger"
	"github.com/jpbelardo/tindahan-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP db.Pinger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	compositionService composer.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/variants", controllers.CatalogList(catalogService, logg))
		r.Post("/refresh", controllers.CatalogRefresh(catalogService, logg))
	})

	r.Route("/api/v1/compositions", func(r chi.Router) {
		r.Post("/", compositions.Start(compositionService, logg))
		r.Route("/{sessionId}", func(r chi.Router) {
			r.Get("/", compositions.Summary(compositionService, logg))
			r.Delete("/", compositions.Cancel(compositionService, logg))
			r.Post("/items", compositions.AddItem(compositionService, logg))
			r.Put("/items/{variantId}/quantity", compositions.SetQuantity(compositionService, logg))
			r.Put("/items/{variantId}/price", compositions.OverridePrice(compositionService, logg))
			r.Delete("/items/{variantId}", compositions.RemoveItem(compositionService, logg))
			r.Put("/schedule", compositions.SetSchedule(compositionService, logg))
			r.Post("/confirm", compositions.Confirm(compositionService, logg))
		})
	})

	return r
}
