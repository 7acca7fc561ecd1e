package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/spicebyte/menu-app/internal/models"
)

var (
	orderReviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_order_reviews_total",
			Help: "Total number of reviewed order forms by outcome",
		},
		[]string{"outcome"},
	)

	orderReviewLines = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "menu_order_review_lines",
			Help:    "Number of line items per reviewed order",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		},
	)
)

func recordOrderReview(summary models.OrderSummary) {
	if summary.IsEmpty() {
		orderReviewsTotal.WithLabelValues("empty").Inc()
		return
	}
	orderReviewsTotal.WithLabelValues("items").Inc()
	orderReviewLines.Observe(float64(len(summary.Lines)))
}
