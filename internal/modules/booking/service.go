package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

const staleCancelReason = "tự động hủy: quá hạn trả phòng khi chưa nhận phòng"

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	items    ServiceItemRepository
	promos   PromotionRepository
	events   EventPublisher

	now func() time.Time
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	items ServiceItemRepository,
	promos PromotionRepository,
	events EventPublisher,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		items:    items,
		promos:   promos,
		events:   events,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*BookingView, error) {
	now := s.now()
	if req.IsHourly {
		if err := ValidateHourlyWindow(req.CheckInDate, req.CheckOutDate); err != nil {
			return nil, err
		}
	} else {
		if err := ValidateDayWindow(now, req.CheckInDate, req.CheckOutDate); err != nil {
			return nil, err
		}
	}

	deposit, err := parseDeposit(req.DepositAmount)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.GetByIDs(ctx, req.RoomIDs)
	if err != nil {
		return nil, err
	}
	if len(rooms) != len(req.RoomIDs) {
		return nil, fmt.Errorf("%w: unknown room in selection", ErrValidation)
	}

	booked, err := s.rooms.AnyBooked(ctx, req.RoomIDs, req.CheckInDate, req.CheckOutDate, 0)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		ReferenceCode: newReferenceCode(),
		CustomerID:    req.CustomerID,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		Status:        domain.BookingPending,
		IsHourly:      req.IsHourly,
		DepositAmount: deposit,
		Notes:         req.Notes,
		Rooms:         freezeRooms(rooms, req.IsHourly),
	}

	if req.PromotionCode != "" {
		promo, err := s.promos.GetByCode(ctx, req.PromotionCode)
		if err != nil {
			return nil, ErrPromotionNotApplicable
		}
		if !promo.EffectiveAt(now) {
			return nil, ErrPromotionNotApplicable
		}
		b.Promotion = promo
		b.PromotionID = &promo.ID
	}

	s.applyTotals(b)

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_no_overbooking" {
			return nil, ErrOverbooking
		}
		return nil, err
	}

	if s.events != nil {
		s.events.PublishStatus(b.ID, b.ReferenceCode, b.Status)
	}

	v := NewBookingView(b)
	return &v, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Customer == nil || len(b.Rooms) == 0 {
		return nil, ErrIncompleteData
	}
	v := NewBookingView(b)
	return &v, nil
}

// List returns booking views with the stale reclassification applied:
// anything still pending or confirmed past its check-out date is shown as
// cancelled, and a best-effort cancellation is fired in the background.
func (s *Service) List(ctx context.Context, f ListFilters) ([]BookingView, error) {
	rows, err := s.bookings.List(ctx, f)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]BookingView, 0, len(rows))
	for i := range rows {
		b := rows[i]
		if IsStale(Canonicalize(string(b.Status)), b.CheckOutDate, now) {
			b.Status = domain.BookingCancelled
			b.CancellationReason = staleCancelReason
			s.cancelStaleInBackground(b.ID)
		}
		out = append(out, NewBookingView(&b))
	}
	return out, nil
}

func (s *Service) cancelStaleInBackground(id int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.bookings.CancelWithReason(ctx, id, staleCancelReason); err != nil {
			// Logged only; the listing must never block or surface this.
			log.Error().Err(err).Int64("booking_id", id).Msg("background stale cancellation failed")
		}
	}()
}

// SweepStale cancels all stale bookings server-side; the cron scheduler
// calls this so the reclassification does not depend on someone opening
// the list screen.
func (s *Service) SweepStale(ctx context.Context) (int, error) {
	rows, err := s.bookings.ListStale(ctx, s.now())
	if err != nil {
		return 0, err
	}
	n := 0
	for _, b := range rows {
		if err := s.bookings.CancelWithReason(ctx, b.ID, staleCancelReason); err != nil {
			log.Error().Err(err).Int64("booking_id", b.ID).Msg("stale sweep cancellation failed")
			continue
		}
		if s.events != nil {
			s.events.PublishStatus(b.ID, b.ReferenceCode, domain.BookingCancelled)
		}
		n++
	}
	return n, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ActionAllowed(Canonicalize(string(b.Status)), ActionEdit) {
		return nil, ErrInvalidStatusTransition
	}

	if req.CheckInDate != nil {
		b.CheckInDate = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		b.CheckOutDate = *req.CheckOutDate
	}
	if b.IsHourly {
		if err := ValidateHourlyWindow(b.CheckInDate, b.CheckOutDate); err != nil {
			return nil, err
		}
	} else {
		if err := ValidateDayWindow(s.now(), b.CheckInDate, b.CheckOutDate); err != nil {
			return nil, err
		}
	}

	if req.DepositAmount != nil {
		deposit, err := parseDeposit(*req.DepositAmount)
		if err != nil {
			return nil, err
		}
		b.DepositAmount = deposit
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}

	if len(req.RoomIDs) > 0 {
		rooms, err := s.rooms.GetByIDs(ctx, req.RoomIDs)
		if err != nil {
			return nil, err
		}
		if len(rooms) != len(req.RoomIDs) {
			return nil, fmt.Errorf("%w: unknown room in selection", ErrValidation)
		}
		booked, err := s.rooms.AnyBooked(ctx, req.RoomIDs, b.CheckInDate, b.CheckOutDate, b.ID)
		if err != nil {
			return nil, err
		}
		if booked {
			return nil, ErrNotAvailable
		}
		b.Rooms = freezeRooms(rooms, b.IsHourly)
		for i := range b.Rooms {
			b.Rooms[i].BookingID = b.ID
		}
	}

	s.applyTotals(b)

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ActionAllowed(Canonicalize(string(b.Status)), ActionCancel) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, id, reason); err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.PublishStatus(b.ID, b.ReferenceCode, domain.BookingCancelled)
	}

	return s.Get(ctx, id)
}

func (s *Service) AddServices(ctx context.Context, id int64, req AddServicesRequest) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !serviceMutable(Canonicalize(string(b.Status))) {
		return nil, ErrInvalidStatusTransition
	}

	lines := make([]domain.ServiceUsage, 0, len(req.Services))
	for _, sl := range req.Services {
		item, err := s.items.GetByID(ctx, sl.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown service item %d", ErrValidation, sl.ItemID)
		}
		if !item.Active {
			return nil, fmt.Errorf("%w: service %q is not offered", ErrValidation, item.Name)
		}
		lines = append(lines, domain.ServiceUsage{
			BookingID: id,
			ItemID:    item.ID,
			RoomID:    sl.RoomID,
			Name:      item.Name,
			Kind:      item.Kind,
			Quantity:  sl.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.bookings.AddServiceLines(ctx, id, lines); err != nil {
		return nil, err
	}
	return s.recomputeAndView(ctx, id)
}

func (s *Service) RemoveService(ctx context.Context, id int64, lineID int64) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !serviceMutable(Canonicalize(string(b.Status))) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.RemoveServiceLine(ctx, id, lineID); err != nil {
		return nil, err
	}
	return s.recomputeAndView(ctx, id)
}

// serviceMutable: usage lines can change until the guest has settled;
// checked-out and cancelled stays are frozen.
func serviceMutable(status domain.BookingStatus) bool {
	switch status {
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCheckedIn:
		return true
	}
	return false
}

func (s *Service) recomputeAndView(ctx context.Context, id int64) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.applyTotals(b)
	if err := s.bookings.SaveTotals(ctx, b.ID, b.RawTotal, b.DiscountAmount, b.TotalAmount); err != nil {
		return nil, err
	}
	v := NewBookingView(b)
	return &v, nil
}

// applyTotals recomputes the stored monetary fields so the invariants
// raw_total = subtotals and total_amount = raw_total - discount hold.
func (s *Service) applyTotals(b *domain.Booking) {
	t := ComputeTotals(b)
	raw := t.RawTotal()
	if b.Promotion != nil {
		b.DiscountAmount = money.Round(b.Promotion.DiscountFor(raw))
	}
	b.RawTotal = raw
	b.TotalAmount = money.Round(raw - b.DiscountAmount)
}

func parseDeposit(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: deposit must be a non-negative number", ErrValidation)
	}
	return money.Round(v), nil
}

func freezeRooms(rooms []domain.Room, hourly bool) []domain.BookingRoom {
	out := make([]domain.BookingRoom, 0, len(rooms))
	for i := range rooms {
		r := rooms[i]
		var rate float64
		if r.RoomType != nil {
			if hourly {
				rate = r.RoomType.HourlyRate
			} else {
				rate = r.RoomType.BaseRate
			}
		}
		out = append(out, domain.BookingRoom{RoomID: r.ID, Rate: rate, Room: &r})
	}
	return out
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
