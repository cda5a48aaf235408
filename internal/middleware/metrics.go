package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus

	// SignupsTotal counts successful account registrations.
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movieclub_signups_total",
		Help: "Successful account registrations.",
	})
	// LoginsTotal counts login attempts by outcome ("success" or "failure").
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movieclub_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})
	// PostsCreatedTotal counts club posts created.
	PostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movieclub_posts_created_total",
		Help: "Club posts created.",
	})
	// ClubJoinsTotal counts successful club joins.
	ClubJoinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movieclub_club_joins_total",
		Help: "Successful club joins.",
	})
)

// InitMetrics returns the process-wide Prometheus request middleware. The
// collector registers with the default registry exactly once, so building
// multiple servers (tests do) is safe.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}
