package hotel

import "time"

// RoomVariant is the pricing tier of a room. The set is closed: adding a
// tier means adding a constant and a DailyRate case, not a new type.
type RoomVariant string

const (
	VariantStandard RoomVariant = "SIMPLES"
	VariantLuxury   RoomVariant = "LUXO"
)

const luxuryRateFactor = 1.5

type Room struct {
	Variant   RoomVariant `json:"variant"`
	Number    int         `json:"number"`
	BasePrice float64     `json:"base_price"`
	Occupied  bool        `json:"occupied"`
}

// DailyRate is the price of one night in this room.
func (r *Room) DailyRate() float64 {
	switch r.Variant {
	case VariantLuxury:
		return r.BasePrice * luxuryRateFactor
	default:
		return r.BasePrice
	}
}

type Guest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone"`
}

// StayPeriod is an immutable whole-day date range. Construct it with
// NewStayPeriod; a zero-night stay (check-in == check-out) is legal.
type StayPeriod struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = checkIn.Truncate(24 * time.Hour)   //nolint:gomnd
	checkOut = checkOut.Truncate(24 * time.Hour) //nolint:gomnd

	if checkOut.Before(checkIn) {
		return StayPeriod{}, ErrInvalidPeriod
	}

	return StayPeriod{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func (p StayPeriod) Nights() int {
	return int(p.CheckOut.Sub(p.CheckIn).Hours() / 24) //nolint:gomnd
}

// Reservation is one entry of the append-only reservation log. It references
// the guest and the room by identifier, never by live handle; whether it is
// still active is derived from the room's current occupancy, not stored here.
type Reservation struct {
	ID         int        `json:"id"`
	GuestTaxID string     `json:"guest_tax_id"`
	GuestName  string     `json:"guest_name"`
	RoomNumber int        `json:"room_number"`
	Period     StayPeriod `json:"period"`
	Total      float64    `json:"total"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ReserveInput struct {
	GuestTaxID string    `json:"guest_tax_id"`
	RoomNumber int       `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
}
