package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of catalog feed messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of catalog feed messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of catalog feed messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_cache_operations_total",
			Help: "Session cart cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|conflict
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_cache_size",
			Help: "Number of session carts currently in memory",
		},
	)
)

var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations by operation and outcome",
		},
		[]string{"op", "result"}, // op: add|remove; result: ok|not_found|invalid|error
	)
	SearchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Search-as-you-type requests by outcome",
		},
		[]string{"result"}, // hit|empty|short|error
	)
	NewsletterSubscriptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_subscriptions_total",
			Help: "Newsletter subscription attempts by outcome",
		},
		[]string{"result"}, // new|duplicate|invalid|error
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в реестре по умолчанию; повторный вызов — no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			CartOps, SearchRequests, NewsletterSubscriptions,
		)
	})
}
