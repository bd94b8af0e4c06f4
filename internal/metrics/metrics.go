package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "groundbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundbook_bookings_total",
			Help: "Total number of bookings by status",
		},
		[]string{"status"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "groundbook_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	CheckoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundbook_checkout_sessions_total",
			Help: "Total number of checkout session requests",
		},
		[]string{"result"},
	)

	PaymentsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "groundbook_payments_processed_total",
			Help: "Total number of successfully reconciled payments",
		},
	)

	VenuesPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "groundbook_venues_published_total",
			Help: "Total number of venue listings published",
		},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundbook_uploads_total",
			Help: "Total number of image uploads",
		},
		[]string{"bucket", "status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundbook_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "groundbook_email_queue_length",
			Help: "Current length of email queue",
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

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordCheckoutSession(result string) {
	CheckoutSessionsTotal.WithLabelValues(result).Inc()
}

func RecordPaymentProcessed() {
	PaymentsProcessedTotal.Inc()
}

func RecordVenuePublished() {
	VenuesPublishedTotal.Inc()
}

func RecordUpload(bucket, status string) {
	UploadsTotal.WithLabelValues(bucket, status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
