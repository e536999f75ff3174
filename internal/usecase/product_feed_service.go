package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/validate"
)

// ProductFeedService — приём товаров из фида каталога (Kafka).
type ProductFeedService struct {
	repo      ports.ProductRepository
	log       ports.Logger
	validator ports.ProductValidator
}

func NewProductFeedService(repo ports.ProductRepository, log ports.Logger, validator ports.ProductValidator) *ProductFeedService {
	return &ProductFeedService{repo: repo, log: log, validator: validator}
}

// SaveFromMessage — сохранить товар из сообщения (raw JSON).
// Шаги:
//  1. строгий парсинг и доменная валидация (validate.ErrInvalidProduct — повтор бессмысленен);
//  2. идемпотентный upsert в БД (ошибка — временная, сообщение не коммитится).
func (s *ProductFeedService) SaveFromMessage(ctx context.Context, raw []byte) error {
	product, err := validate.ProductFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid product message err=%v", err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Upsert(ctx, product); err != nil {
		s.log.Errorf(ctx, "repo.Upsert failed id=%s err=%v", product.ID, err)
		return fmt.Errorf("failed to save product: %w", err)
	}

	s.log.Infof(ctx, "product saved id=%s slug=%s", product.ID, product.Slug)
	return nil
}
