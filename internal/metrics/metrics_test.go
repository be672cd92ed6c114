package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/experiences", "200", 0.05)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/experiences", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/bookings", "201", 0.1)
	RecordHTTPRequest("POST", "/api/bookings", "201", 0.2)
	RecordHTTPRequest("POST", "/api/bookings", "400", 0.05)

	created := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "201"))
	rejected := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "400"))

	assert.Equal(t, float64(2), created)
	assert.Equal(t, float64(1), rejected)
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("confirmed")

	count := testutil.ToFloat64(BookingsTotal.WithLabelValues("confirmed"))
	assert.Equal(t, float64(1), count)
}

func TestRecordStatusUpdate(t *testing.T) {
	BookingStatusUpdatesTotal.Reset()

	RecordStatusUpdate("cancelled")
	RecordStatusUpdate("cancelled")
	RecordStatusUpdate("confirmed")

	cancelled := testutil.ToFloat64(BookingStatusUpdatesTotal.WithLabelValues("cancelled"))
	confirmed := testutil.ToFloat64(BookingStatusUpdatesTotal.WithLabelValues("confirmed"))

	assert.Equal(t, float64(2), cancelled)
	assert.Equal(t, float64(1), confirmed)
}

func TestRecordPromoValidation(t *testing.T) {
	PromoValidationsTotal.Reset()

	RecordPromoValidation("valid")
	RecordPromoValidation("invalid")
	RecordPromoValidation("invalid")

	valid := testutil.ToFloat64(PromoValidationsTotal.WithLabelValues("valid"))
	invalid := testutil.ToFloat64(PromoValidationsTotal.WithLabelValues("invalid"))

	assert.Equal(t, float64(1), valid)
	assert.Equal(t, float64(2), invalid)
}

func TestRecordNotification(t *testing.T) {
	NotificationsSentTotal.Reset()

	RecordNotification("booking_confirmation", "success")

	count := testutil.ToFloat64(NotificationsSentTotal.WithLabelValues("booking_confirmation", "success"))
	assert.Equal(t, float64(1), count)
}
