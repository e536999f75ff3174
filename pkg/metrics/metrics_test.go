package metrics_test

import (
	"strings"
	"testing"

	"github.com/Gunvolt24/pixelcraft/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMustRegister_Twice(t *testing.T) {
	require.NotPanics(t, func() {
		metrics.MustRegister()
		metrics.MustRegister()
	})
}

func TestCartOps_ByOpAndResult(t *testing.T) {
	metrics.MustRegister()

	addOK := testutil.ToFloat64(metrics.CartOps.WithLabelValues("add", "ok"))
	addMissing := testutil.ToFloat64(metrics.CartOps.WithLabelValues("add", "not_found"))
	removeOK := testutil.ToFloat64(metrics.CartOps.WithLabelValues("remove", "ok"))

	metrics.CartOps.WithLabelValues("add", "ok").Add(2)
	metrics.CartOps.WithLabelValues("remove", "ok").Inc()

	require.Equal(t, addOK+2, testutil.ToFloat64(metrics.CartOps.WithLabelValues("add", "ok")))
	require.Equal(t, addMissing, testutil.ToFloat64(metrics.CartOps.WithLabelValues("add", "not_found")))
	require.Equal(t, removeOK+1, testutil.ToFloat64(metrics.CartOps.WithLabelValues("remove", "ok")))
}

func TestSearchAndNewsletter_Exposition(t *testing.T) {
	metrics.MustRegister()

	metrics.SearchRequests.WithLabelValues("short").Inc()
	metrics.NewsletterSubscriptions.WithLabelValues("duplicate").Inc()

	require.GreaterOrEqual(t, testutil.CollectAndCount(metrics.SearchRequests, "search_requests_total"), 1)

	const want = `
# HELP newsletter_subscriptions_total Newsletter subscription attempts by outcome
# TYPE newsletter_subscriptions_total counter
newsletter_subscriptions_total{result="duplicate"} 1
`
	require.NoError(t, testutil.CollectAndCompare(metrics.NewsletterSubscriptions, strings.NewReader(want)))
}
