package invoice

import (
	"encoding/json"
	"errors"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/pkg/money"
)

var ErrUnknownPayload = errors.New("unrecognized invoice payload shape")

// Line is one billed service or amenity row of the normalized view.
type Line struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
	RoomID   *int64 `json:"room_id,omitempty"`
}

// Amounts is the normalized monetary breakdown, decimal strings on the wire.
type Amounts struct {
	Room     string `json:"room"`
	Service  string `json:"service"`
	Amenity  string `json:"amenity"`
	Discount string `json:"discount"`
	Deposit  string `json:"deposit"`
	Total    string `json:"total"`
}

// View is the single internal shape every invoice payload converges on,
// whichever wire variant it arrived in.
type View struct {
	Code          string    `json:"code"`
	BookingID     int64     `json:"booking_id"`
	IssuedAt      time.Time `json:"issued_at"`
	CustomerName  string    `json:"customer_name"`
	PaymentMethod string    `json:"payment_method"`
	Amounts       Amounts   `json:"amounts"`
	ServiceLines  []Line    `json:"service_lines"`
	AmenityLines  []Line    `json:"amenity_lines"`
	TotalText     string    `json:"total_text"`
}

// legacyPayload is the flat shape produced by the previous billing system.
// Amenities are folded into the single services bucket.
type legacyPayload struct {
	InvoiceCode    string       `json:"invoice_code"`
	BookingID      int64        `json:"booking_id"`
	IssuedAt       time.Time    `json:"issued_at"`
	CustomerName   string       `json:"customer_name"`
	PaymentMethod  string       `json:"payment_method"`
	RoomAmount     string       `json:"room_amount"`
	ServiceAmount  string       `json:"service_amount"`
	DiscountAmount string       `json:"discount_amount"`
	DepositAmount  string       `json:"deposit_amount"`
	TotalAmount    string       `json:"total_amount"`
	Services       []legacyLine `json:"services"`
}

type legacyLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// structuredPayload is the shape this system issues.
type structuredPayload struct {
	Invoice struct {
		Code          string    `json:"code"`
		IssuedAt      time.Time `json:"issued_at"`
		PaymentMethod string    `json:"payment_method"`
	} `json:"invoice"`
	Booking struct {
		ID            int64  `json:"id"`
		ReferenceCode string `json:"reference_code"`
		CustomerName  string `json:"customer_name"`
	} `json:"booking"`
	Meta struct {
		Version int    `json:"version"`
		Source  string `json:"source"`
	} `json:"meta"`
	Totals struct {
		Saved savedTotals `json:"saved"`
	} `json:"totals"`
	ServiceLines []payloadLine `json:"service_lines"`
	AmenityLines []payloadLine `json:"amenity_lines"`
}

type savedTotals struct {
	Room     string `json:"room"`
	Service  string `json:"service"`
	Amenity  string `json:"amenity"`
	Discount string `json:"discount"`
	Deposit  string `json:"deposit"`
	Total    string `json:"total"`
}

type payloadLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	RoomID   *int64 `json:"room_id,omitempty"`
}

// Normalize detects which wire variant a stored payload is and converges
// it on the one internal View. The structured shape is recognized by the
// presence of both "totals" and "meta" keys; everything else is read as
// the legacy flat shape.
func Normalize(raw json.RawMessage) (*View, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, ErrUnknownPayload
	}

	_, hasTotals := probe["totals"]
	_, hasMeta := probe["meta"]
	if hasTotals && hasMeta {
		var p structuredPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, ErrUnknownPayload
		}
		return fromStructured(p), nil
	}

	var p legacyPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, ErrUnknownPayload
	}
	if p.InvoiceCode == "" {
		return nil, ErrUnknownPayload
	}
	return fromLegacy(p), nil
}

func fromStructured(p structuredPayload) *View {
	v := &View{
		Code:          p.Invoice.Code,
		BookingID:     p.Booking.ID,
		IssuedAt:      p.Invoice.IssuedAt,
		CustomerName:  p.Booking.CustomerName,
		PaymentMethod: p.Invoice.PaymentMethod,
		Amounts: Amounts{
			Room:     reformat(p.Totals.Saved.Room),
			Service:  reformat(p.Totals.Saved.Service),
			Amenity:  reformat(p.Totals.Saved.Amenity),
			Discount: reformat(p.Totals.Saved.Discount),
			Deposit:  reformat(p.Totals.Saved.Deposit),
			Total:    reformat(p.Totals.Saved.Total),
		},
		ServiceLines: make([]Line, 0, len(p.ServiceLines)),
		AmenityLines: make([]Line, 0, len(p.AmenityLines)),
	}
	for _, l := range p.ServiceLines {
		v.ServiceLines = append(v.ServiceLines, normalizeLine(l.Name, l.Quantity, l.Price, l.RoomID))
	}
	for _, l := range p.AmenityLines {
		v.AmenityLines = append(v.AmenityLines, normalizeLine(l.Name, l.Quantity, l.Price, l.RoomID))
	}
	v.TotalText = money.FormatVND(money.ParseDecimal(v.Amounts.Total))
	return v
}

func fromLegacy(p legacyPayload) *View {
	v := &View{
		Code:          p.InvoiceCode,
		BookingID:     p.BookingID,
		IssuedAt:      p.IssuedAt,
		CustomerName:  p.CustomerName,
		PaymentMethod: p.PaymentMethod,
		Amounts: Amounts{
			Room:     reformat(p.RoomAmount),
			Service:  reformat(p.ServiceAmount),
			Amenity:  money.FormatDecimal(0),
			Discount: reformat(p.DiscountAmount),
			Deposit:  reformat(p.DepositAmount),
			Total:    reformat(p.TotalAmount),
		},
		ServiceLines: make([]Line, 0, len(p.Services)),
		AmenityLines: []Line{},
	}
	for _, l := range p.Services {
		v.ServiceLines = append(v.ServiceLines, normalizeLine(l.Name, l.Quantity, l.Price, nil))
	}
	v.TotalText = money.FormatVND(money.ParseDecimal(v.Amounts.Total))
	return v
}

// reformat re-parses a wire decimal so garbage amounts collapse to "0.00"
// instead of leaking into arithmetic or display.
func reformat(s string) string {
	return money.FormatDecimal(money.ParseDecimal(s))
}

func normalizeLine(name string, qty int, price string, roomID *int64) Line {
	p := money.ParseDecimal(price)
	return Line{
		Name:     name,
		Quantity: qty,
		Price:    money.FormatDecimal(p),
		Total:    money.FormatDecimal(p * float64(qty)),
		RoomID:   roomID,
	}
}

// BuildStructuredPayload serializes a settled booking into the structured
// wire shape stored on new invoices.
func BuildStructuredPayload(b *domain.Booking, inv *domain.Invoice) ([]byte, error) {
	var p structuredPayload
	p.Invoice.Code = inv.Code
	p.Invoice.IssuedAt = inv.IssuedAt
	p.Invoice.PaymentMethod = string(inv.PaymentMethod)
	p.Booking.ID = b.ID
	p.Booking.ReferenceCode = b.ReferenceCode
	if b.Customer != nil {
		p.Booking.CustomerName = b.Customer.FullName
	}
	p.Meta.Version = 2
	p.Meta.Source = "hotelpms"
	p.Totals.Saved = savedTotals{
		Room:     money.FormatDecimal(inv.RoomAmount),
		Service:  money.FormatDecimal(inv.ServiceAmount),
		Amenity:  money.FormatDecimal(inv.AmenityAmount),
		Discount: money.FormatDecimal(inv.DiscountAmount),
		Deposit:  money.FormatDecimal(b.DepositAmount),
		Total:    money.FormatDecimal(inv.TotalAmount),
	}
	p.ServiceLines = make([]payloadLine, 0)
	p.AmenityLines = make([]payloadLine, 0)
	for _, l := range b.Services {
		pl := payloadLine{Name: l.Name, Quantity: l.Quantity, Price: money.FormatDecimal(l.Price), RoomID: l.RoomID}
		if l.Kind == domain.KindAmenity {
			p.AmenityLines = append(p.AmenityLines, pl)
		} else {
			p.ServiceLines = append(p.ServiceLines, pl)
		}
	}
	return json.Marshal(p)
}
