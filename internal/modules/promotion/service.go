package promotion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/pkg/money"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	promotions PromotionRepository

	now func() time.Time
}

func NewService(promotions PromotionRepository) *Service {
	return &Service{promotions: promotions, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreatePromotionRequest) (*domain.Promotion, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, ErrValidation
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent must be between 0 and 100", ErrValidation)
	}

	p := &domain.Promotion{
		Code:            code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  money.ParseDecimal(req.DiscountAmount),
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Active:          req.Active,
	}
	if err := s.promotions.Create(ctx, p); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Promotion, error) {
	return s.promotions.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.Promotion, error) {
	return s.promotions.List(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePromotionRequest) (*domain.Promotion, error) {
	p, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.DiscountPercent != nil {
		if *req.DiscountPercent < 0 || *req.DiscountPercent > 100 {
			return nil, fmt.Errorf("%w: discount percent must be between 0 and 100", ErrValidation)
		}
		p.DiscountPercent = *req.DiscountPercent
	}
	if req.DiscountAmount != nil {
		p.DiscountAmount = money.ParseDecimal(*req.DiscountAmount)
	}
	if req.StartsAt != nil {
		p.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		p.EndsAt = *req.EndsAt
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := s.promotions.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.promotions.GetByID(ctx, id); err != nil {
		return err
	}
	return s.promotions.Delete(ctx, id)
}

// ValidateCode previews the discount a code would grant right now, so
// the booking form can show it before the reservation is submitted.
func (s *Service) ValidateCode(ctx context.Context, req ValidateCodeRequest) (*ValidateCodeResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	p, err := s.promotions.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !p.EffectiveAt(s.now()) {
		return nil, ErrNotEffective
	}

	resp := newValidateCodeResponse(p.Code, p.DiscountFor(money.ParseDecimal(req.RawTotal)))
	return &resp, nil
}
