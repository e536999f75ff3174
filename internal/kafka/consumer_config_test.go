package kafka_test

import (
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	ikafka "github.com/Gunvolt24/pixelcraft/internal/kafka"
)

func TestConsumerConfig_ReaderConfig_StartOffset(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		"first":      kafkago.FirstOffset,
		" Earliest ": kafkago.FirstOffset,
		"\tFIRST\n":  kafkago.FirstOffset,
		"":           kafkago.LastOffset,
		"latest":     kafkago.LastOffset,
		"LAST":       kafkago.LastOffset,
		"tomorrow":   kafkago.LastOffset,
	}
	for in, want := range cases {
		cfg := ikafka.ConsumerConfig{StartOffset: in}
		require.Equal(t, want, cfg.ReaderConfig().StartOffset, "start offset %q", in)
	}
}

func TestConsumerConfig_ReaderConfig_FeedFields(t *testing.T) {
	t.Parallel()

	cfg := ikafka.ConsumerConfig{
		Brokers: []string{"redpanda-0:9092", "redpanda-1:9092"},
		Topic:   "products",
		GroupID: "storefront",
	}
	rc := cfg.ReaderConfig()

	require.Equal(t, cfg.Brokers, rc.Brokers)
	require.Equal(t, "products", rc.Topic)
	require.Equal(t, "storefront", rc.GroupID)
	require.Zero(t, rc.CommitInterval, "offsets are committed manually")
	require.Equal(t, 1<<20, rc.MaxBytes)

	cfg.MaxBytes = 4096
	require.Equal(t, 4096, cfg.ReaderConfig().MaxBytes)
}
