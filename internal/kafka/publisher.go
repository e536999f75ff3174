package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — публикует товары в фид каталога; ключ сообщения — id товара,
// чтобы обновления одного товара шли в одну партицию по порядку.
type Publisher struct {
	writer    writer
	closeOnce sync.Once
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}}
}

// Publish — одна пачка на вызов; пустой список — no-op.
func (p *Publisher) Publish(ctx context.Context, products ...*domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(products))
	for _, product := range products {
		raw, err := json.Marshal(product)
		if err != nil {
			return fmt.Errorf("marshal product %s: %w", product.ID, err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(product.ID), Value: raw})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write messages: %w", err)
	}
	return nil
}

func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
