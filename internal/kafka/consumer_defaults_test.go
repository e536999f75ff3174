package kafka

import (
	"testing"
	"time"
)

func TestConsumerConfig_withDefaults(t *testing.T) {
	got := (&ConsumerConfig{}).withDefaults()
	if got.ProcessTimeout != 5*time.Second || got.RetryInitial != time.Second || got.RetryMax != 30*time.Second {
		t.Fatalf("unexpected defaults: %+v", got)
	}

	got = (&ConsumerConfig{RetryInitial: 2 * time.Second, RetryMax: time.Second}).withDefaults()
	if got.RetryMax != 2*time.Second {
		t.Fatalf("RetryMax must not be below RetryInitial, got %v", got.RetryMax)
	}
}
