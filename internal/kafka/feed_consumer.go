package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/metrics"
)

// Проверка, что FeedConsumer удовлетворяет порту приложения.
var _ ports.MessageConsumer = (*FeedConsumer)(nil)

// reader — минимальный контракт над kafka.Reader (подменяется моками в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageSaver — разбор, валидация и сохранение товара из сообщения.
type messageSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// FeedConsumer — читает фид каталога и передаёт сообщения в usecase.
type FeedConsumer struct {
	reader         reader
	service        messageSaver
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

func NewFeedConsumer(cfg *ConsumerConfig, service messageSaver, log ports.Logger) *FeedConsumer {
	c := cfg.withDefaults()
	return &FeedConsumer{
		reader:         kafka.NewReader(c.ReaderConfig()),
		service:        service,
		log:            log,
		processTimeout: c.ProcessTimeout,
		retryInitial:   c.RetryInitial,
		retryMax:       c.RetryMax,
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — основной цикл:
// 1) читаем сообщение без авто-коммита;
// 2) товар сохранён → коммит;
// 3) невалидный товар → лог и коммит (пропускаем навсегда);
// 4) временная ошибка → без коммита, сообщение будет прочитано снова.
func (c *FeedConsumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "catalog feed consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial

	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleep(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.commitSafely(ctx, &msg)
			continue
		}
		// пауза после временной ошибки, чтобы не долбить БД
		_ = c.sleep(ctx, c.withJitterEqual(min(c.retryInitial, 500*time.Millisecond)))
	}
}

// Close — закрывает reader; повторный вызов — no-op.
func (c *FeedConsumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
