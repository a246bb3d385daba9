package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "table_reservation",
			Name:      "booking_created_total",
			Help:      "Count of booking requests accepted.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "table_reservation",
			Name:      "booking_rejected_total",
			Help:      "Count of booking requests rejected by validation, by field.",
		},
		[]string{"field"},
	)

	statusTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "table_reservation",
			Name:      "status_transition_total",
			Help:      "Count of booking status transitions by target status.",
		},
		[]string{"status"},
	)

	notificationComposed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "table_reservation",
			Name:      "notification_composed_total",
			Help:      "Count of WhatsApp confirmation messages composed.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingRejected, statusTransition, notificationComposed)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingRejected(field string) {
	bookingRejected.WithLabelValues(field).Inc()
}

func IncStatusTransition(status string) {
	statusTransition.WithLabelValues(status).Inc()
}

func IncNotificationComposed() {
	notificationComposed.Inc()
}
