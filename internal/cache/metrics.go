package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	regionPoint = "point"
	regionList  = "list"
)

var cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "transaction",
	Subsystem: "cache",
	Name:      "requests_total",
	Help:      "Cache lookups partitioned by region and hit/miss result.",
}, []string{"region", "result"})

func observe(region string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheRequests.WithLabelValues(region, result).Inc()
}
