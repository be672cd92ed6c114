package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookit_bookings_total",
			Help: "Total number of bookings created",
		},
		[]string{"status"},
	)

	BookingStatusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookit_booking_status_updates_total",
			Help: "Total number of booking status updates",
		},
		[]string{"status"},
	)

	PromoValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookit_promo_validations_total",
			Help: "Total number of promo code validations",
		},
		[]string{"result"},
	)

	PricingMismatchTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookit_pricing_mismatch_total",
			Help: "Bookings whose submitted taxes/total differ from the server recomputation",
		},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookit_notifications_sent_total",
			Help: "Total number of notification emails sent",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookit_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordStatusUpdate(status string) {
	BookingStatusUpdatesTotal.WithLabelValues(status).Inc()
}

func RecordPromoValidation(result string) {
	PromoValidationsTotal.WithLabelValues(result).Inc()
}

func RecordPricingMismatch() {
	PricingMismatchTotal.Inc()
}

func RecordNotification(notificationType, status string) {
	NotificationsSentTotal.WithLabelValues(notificationType, status).Inc()
}
