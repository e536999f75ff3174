package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// defaultMaxBytes — верхняя граница батча; карточка товара с описанием и картинками
// укладывается в несколько килобайт.
const defaultMaxBytes = 1 << 20

// ConsumerConfig — параметры чтения фида каталога.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	// StartOffset — first|earliest или last|latest (регистр и пробелы не важны); прочее — last.
	StartOffset string
	MaxBytes    int

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig — kafka.Reader без автокоммита: оффсет фиксирует сам консьюмер после сохранения товара.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	maxBytes := c.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	start := kafka.LastOffset
	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first", "earliest":
		start = kafka.FirstOffset
	}

	return kafka.ReaderConfig{
		Brokers:     c.Brokers,
		GroupID:     c.GroupID,
		Topic:       c.Topic,
		StartOffset: start,
		MaxBytes:    maxBytes,
	}
}

// withDefaults — нулевые таймауты заменяются значениями по умолчанию.
func (c *ConsumerConfig) withDefaults() ConsumerConfig {
	out := *c
	if out.ProcessTimeout <= 0 {
		out.ProcessTimeout = 5 * time.Second
	}
	if out.RetryInitial <= 0 {
		out.RetryInitial = time.Second
	}
	if out.RetryMax <= 0 {
		out.RetryMax = 30 * time.Second
	}
	if out.RetryMax < out.RetryInitial {
		out.RetryMax = out.RetryInitial
	}
	return out
}
