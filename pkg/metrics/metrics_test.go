package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("resort", reg)
	rec := NewRecorder(m, "resort")

	rec.AvailabilityChecked(true)
	rec.AvailabilityChecked(false)
	rec.AvailabilityChecked(false)
	rec.BookingCreated()
	rec.ReservationCreated("table")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityChecks.WithLabelValues("resort", "available")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AvailabilityChecks.WithLabelValues("resort", "unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("resort")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("resort", "table")))
}

func TestRecorder_NilSafe(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.BookingCreated()
		NewRecorder(nil, "resort").AvailabilityChecked(true)
	})
}
