package observability

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wb_searches_total",
			Help: "Total search requests executed against Wildberries",
		},
	)
	SearchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wb_search_failures_total",
			Help: "Searches that failed at the session or navigation level",
		},
	)
	EmptyResults = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wb_empty_results_total",
			Help: "Searches that produced zero product records",
		},
	)
	ProductsExtracted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wb_products_extracted_total",
			Help: "Product records successfully extracted from result pages",
		},
	)
)

// Start serves liveness and prometheus metrics on a side port. Best effort:
// a bind failure is logged, not fatal, since the bot itself does not depend
// on the ops surface.
func Start(port string, logger *slog.Logger) {
	prometheus.MustRegister(SearchesTotal, SearchFailures, EmptyResults, ProductsExtracted)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(":"+port, r); err != nil {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
}
