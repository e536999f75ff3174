package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/metrics"
	"github.com/Gunvolt24/pixelcraft/pkg/validate"
)

// Сообщения ответа POST /api/newsletter.
const (
	MsgInvalidEmail      = "E-mail inválido"
	MsgSubscribed        = "E-mail cadastrado com sucesso!"
	MsgAlreadySubscribed = "E-mail já cadastrado"
)

var _ ports.NewsletterService = (*NewsletterService)(nil)

type NewsletterService struct {
	repo ports.NewsletterRepository
	log  ports.Logger
}

func NewNewsletterService(repo ports.NewsletterRepository, log ports.Logger) *NewsletterService {
	return &NewsletterService{repo: repo, log: log}
}

// Subscribe — невалидный адрес не ошибка, а отрицательный результат; повторная подписка успешна.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (domain.NewsletterResult, error) {
	normalized, err := validate.Email(email)
	if err != nil {
		metrics.NewsletterSubscriptions.WithLabelValues("invalid").Inc()
		return domain.NewsletterResult{Success: false, Message: MsgInvalidEmail}, nil
	}

	created, err := s.repo.Subscribe(ctx, normalized)
	if err != nil {
		metrics.NewsletterSubscriptions.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "repo.Subscribe failed err=%v", err)
		return domain.NewsletterResult{}, fmt.Errorf("subscribe: %w", err)
	}
	if !created {
		metrics.NewsletterSubscriptions.WithLabelValues("duplicate").Inc()
		return domain.NewsletterResult{Success: true, Message: MsgAlreadySubscribed}, nil
	}

	metrics.NewsletterSubscriptions.WithLabelValues("new").Inc()
	return domain.NewsletterResult{Success: true, Message: MsgSubscribed}, nil
}
