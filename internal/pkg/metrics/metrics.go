package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors. A single instance is
// created at bootstrap and shared through DI.
type Metrics struct {
	BookingsCreated     *prometheus.CounterVec
	BookingsCancelled   prometheus.Counter
	SlotConflicts       prometheus.Counter
	LockTimeouts        prometheus.Counter
	WaitlistAllocations *prometheus.CounterVec
	RefundAmount        prometheus.Counter
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		BookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "turfbook_bookings_created_total",
			Help: "Bookings created, by origin of the create request.",
		}, []string{"origin"}),
		BookingsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "turfbook_bookings_cancelled_total",
			Help: "Bookings cancelled.",
		}),
		SlotConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "turfbook_slot_conflicts_total",
			Help: "Create attempts rejected because the slot was taken.",
		}),
		LockTimeouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "turfbook_slot_lock_timeouts_total",
			Help: "Slot lease acquisitions that exceeded the bounded wait.",
		}),
		WaitlistAllocations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "turfbook_waitlist_allocations_total",
			Help: "Waitlist allocations, by trigger (join or reallocation).",
		}, []string{"trigger"}),
		RefundAmount: factory.NewCounter(prometheus.CounterOpts{
			Name: "turfbook_refund_amount_total",
			Help: "Total refunded amount in whole currency units.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "turfbook_http_requests_total",
			Help: "HTTP requests, by method, path and status.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "turfbook_http_request_duration_seconds",
			Help:    "HTTP request duration.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Booking create origins.
const (
	OriginDirect    = "direct"
	OriginWaitlist  = "waitlist"
	OriginRecurring = "recurring"
)

// Waitlist allocation triggers.
const (
	TriggerJoin         = "join"
	TriggerReallocation = "reallocation"
)
