package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/kafka/mocks"
)

func TestPublish_KeysByProductID(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	var got []kafka.Message
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			got = msgs
			return nil
		})

	p := &Publisher{writer: w}
	err := p.Publish(context.Background(),
		&domain.Product{ID: "pc-1", Name: "A", Price: 1},
		&domain.Product{ID: "pc-2", Name: "B", Price: 2},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || string(got[0].Key) != "pc-1" || string(got[1].Key) != "pc-2" {
		t.Fatalf("unexpected messages: %+v", got)
	}

	var decoded domain.Product
	if err := json.Unmarshal(got[1].Value, &decoded); err != nil || decoded.Name != "B" {
		t.Fatalf("value must be product JSON, got %s err=%v", got[1].Value, err)
	}
}

func TestPublish_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	p := &Publisher{writer: w}
	if err := p.Publish(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPublish_WriteErr(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	writeErr := errors.New("broker down")
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(writeErr)
	w.EXPECT().Close().Return(nil)

	p := &Publisher{writer: w}
	if err := p.Publish(context.Background(), &domain.Product{ID: "pc-1"}); !errors.Is(err, writeErr) {
		t.Fatalf("want wrapped write error, got %v", err)
	}
	_ = p.Close()
	_ = p.Close()
}
