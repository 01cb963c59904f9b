package promotion

import (
	"context"

	"hotelpms/internal/domain"
)

type PromotionRepository interface {
	Create(ctx context.Context, p *domain.Promotion) error
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Promotion, error)
	Update(ctx context.Context, p *domain.Promotion) error
	Delete(ctx context.Context, id int64) error
}
