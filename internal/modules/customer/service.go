package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotelpms/internal/domain"
	"hotelpms/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	customers CustomerRepository
}

func NewService(customers CustomerRepository) *Service {
	return &Service{customers: customers}
}

// Create registers a guest. The national id (CCCD) is the natural key:
// registering an already known id is reported as a duplicate so the
// front desk can pull up the existing profile instead.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	nationalID := strings.TrimSpace(req.NationalID)
	if nationalID == "" {
		return nil, ErrValidation
	}

	if _, err := s.customers.GetByNationalID(ctx, nationalID); err == nil {
		return nil, ErrDuplicateNationalID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &domain.Customer{
		FullName:    strings.TrimSpace(req.FullName),
		NationalID:  nationalID,
		Phone:       req.Phone,
		Email:       req.Email,
		Nationality: req.Nationality,
		Address:     req.Address,
	}
	if fields := validator.Validate(c); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, fields)
	}
	if err := s.customers.Create(ctx, c); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateNationalID
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	return s.customers.List(ctx, search, limit, offset)
}

// Update changes contact details. The national id never changes; a typo
// there means the profile was the wrong person to begin with.
func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		c.FullName = strings.TrimSpace(req.FullName)
	}
	if req.Phone != "" {
		c.Phone = req.Phone
	}
	if req.Email != "" {
		c.Email = req.Email
	}
	if req.Nationality != "" {
		c.Nationality = req.Nationality
	}
	if req.Address != "" {
		c.Address = req.Address
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return err
	}
	return s.customers.Delete(ctx, id)
}
