package hotel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avstrong/hotel/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (int, error)
}

type storageReader interface {
	RoomByNumber(ctx context.Context, number int) (*Room, error)
	Rooms(ctx context.Context) ([]*Room, error)
	GuestByTaxID(ctx context.Context, taxID string) (*Guest, error)
	Guests(ctx context.Context) ([]*Guest, error)
	Reservations(ctx context.Context) ([]*Reservation, error)
}

type storageWriter interface {
	InsertRoom(ctx context.Context, room *Room) error
	InsertGuest(ctx context.Context, guest *Guest) error
	AppendReservation(ctx context.Context, reservation *Reservation) error
	SetRoomOccupied(ctx context.Context, number int, occupied bool) error
}

type storage interface {
	storageReader
	storageWriter
}

// Manager owns the reservation workflow. All catalog state lives in the
// storage; the manager enforces the ordering that keeps a failed operation
// free of side effects.
type Manager struct {
	l           *logger.Logger
	storage     storage
	idGenerator idGenerator
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator) *Manager {
	return &Manager{
		l:           l,
		storage:     storage,
		idGenerator: idGenerator,
	}
}

func validateRoom(room *Room) error {
	inputErr := newInputError()

	if room.Number <= 0 {
		inputErr.addError("room.number", "provide a positive room number")
	}

	if room.BasePrice < 0 {
		inputErr.addError("room.basePrice", "base price must not be negative")
	}

	if room.Variant != VariantStandard && room.Variant != VariantLuxury {
		inputErr.addError("room.variant", "provide a known room variant")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func validateGuest(guest *Guest) error {
	inputErr := newInputError()

	if guest.Name == "" {
		inputErr.addError("guest.name", "provide guest name")
	}

	if guest.TaxID == "" {
		inputErr.addError("guest.taxID", "provide guest tax id")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

// RegisterRoom adds a room to the catalog. The occupancy flag is taken as
// given so that rooms restored from a persisted record come back blocked.
func (m *Manager) RegisterRoom(ctx context.Context, room *Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	if err := m.storage.InsertRoom(ctx, room); err != nil {
		return fmt.Errorf("insert room %v: %w", room.Number, err)
	}

	return nil
}

// RegisterGuest appends a guest to the registry. Duplicate tax IDs are not
// rejected; lookups resolve to the first registered match.
func (m *Manager) RegisterGuest(ctx context.Context, guest *Guest) error {
	if err := validateGuest(guest); err != nil {
		return err
	}

	if err := m.storage.InsertGuest(ctx, guest); err != nil {
		return fmt.Errorf("insert guest %v: %w", guest.TaxID, err)
	}

	return nil
}

// CreateReservation runs the booking workflow: resolve the guest, resolve the
// room, check availability, validate the period, then occupy the room and
// append to the reservation log. Every check runs before the first mutation,
// so a failure at any step leaves the catalogs untouched.
func (m *Manager) CreateReservation(ctx context.Context, input *ReserveInput) (*Reservation, error) {
	guest, err := m.storage.GuestByTaxID(ctx, input.GuestTaxID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}

		return nil, fmt.Errorf("resolve guest %v: %w", input.GuestTaxID, err)
	}

	room, err := m.storage.RoomByNumber(ctx, input.RoomNumber)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}

		return nil, fmt.Errorf("resolve room %v: %w", input.RoomNumber, err)
	}

	if room.Occupied {
		return nil, ErrRoomUnavailable
	}

	period, err := NewStayPeriod(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	reservation := &Reservation{
		ID:         id,
		GuestTaxID: guest.TaxID,
		GuestName:  guest.Name,
		RoomNumber: room.Number,
		Period:     period,
		Total:      room.DailyRate() * float64(period.Nights()),
		CreatedAt:  time.Now().UTC(),
	}

	if err := m.storage.SetRoomOccupied(ctx, room.Number, true); err != nil {
		return nil, fmt.Errorf("occupy room %v: %w", room.Number, err)
	}

	if err := m.storage.AppendReservation(ctx, reservation); err != nil {
		return nil, fmt.Errorf("append reservation %v: %w", reservation.ID, err)
	}

	m.l.LogInfo("Reservation %v created: guest %v, room %v, total %.2f", reservation.ID, guest.TaxID, room.Number, reservation.Total)

	return reservation, nil
}

// CheckOut frees the room. The reservation log is not touched: it is an
// append-only history, and "active" is derived from room occupancy.
func (m *Manager) CheckOut(ctx context.Context, roomNumber int) error {
	room, err := m.storage.RoomByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return ErrRoomNotFound
		}

		return fmt.Errorf("resolve room %v: %w", roomNumber, err)
	}

	if !room.Occupied {
		return ErrRoomNotOccupied
	}

	if err := m.storage.SetRoomOccupied(ctx, roomNumber, false); err != nil {
		return fmt.Errorf("free room %v: %w", roomNumber, err)
	}

	m.l.LogInfo("Checked out room %v", roomNumber)

	return nil
}

// ListAvailableRooms returns the free rooms in catalog insertion order.
func (m *Manager) ListAvailableRooms(ctx context.Context) ([]*Room, error) {
	rooms, err := m.storage.Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	available := make([]*Room, 0, len(rooms))

	for _, room := range rooms {
		if !room.Occupied {
			available = append(available, room)
		}
	}

	return available, nil
}

func (m *Manager) ListRooms(ctx context.Context) ([]*Room, error) {
	rooms, err := m.storage.Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	return rooms, nil
}

func (m *Manager) ListGuests(ctx context.Context) ([]*Guest, error) {
	guests, err := m.storage.Guests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}

	return guests, nil
}

// ListReservations returns the full reservation log in creation order,
// including reservations whose room has since been checked out.
func (m *Manager) ListReservations(ctx context.Context) ([]*Reservation, error) {
	reservations, err := m.storage.Reservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return reservations, nil
}

// LoadReport tells how a record load went. Skipped counts malformed lines
// and records the catalog rejected (duplicate number, invalid fields).
type LoadReport struct {
	Loaded  int
	Skipped int
}

// LoadRoomsFromRecords rebuilds the room catalog from persisted records.
// A bad line never aborts the load; it is logged and counted.
func (m *Manager) LoadRoomsFromRecords(ctx context.Context, records []string) (LoadReport, error) {
	var report LoadReport

	for i, record := range records {
		room, err := DecodeRoom(record)
		if err != nil {
			m.l.LogWarnf("Skipping room record %v: %v", i+1, err.Error())

			report.Skipped++

			continue
		}

		if err := m.RegisterRoom(ctx, room); err != nil {
			m.l.LogWarnf("Skipping room record %v: %v", i+1, err.Error())

			report.Skipped++

			continue
		}

		report.Loaded++
	}

	return report, nil
}

// LoadGuestsFromRecords rebuilds the guest registry from persisted records
// with the same skip-and-continue policy as LoadRoomsFromRecords.
func (m *Manager) LoadGuestsFromRecords(ctx context.Context, records []string) (LoadReport, error) {
	var report LoadReport

	for i, record := range records {
		guest, err := DecodeGuest(record)
		if err != nil {
			m.l.LogWarnf("Skipping guest record %v: %v", i+1, err.Error())

			report.Skipped++

			continue
		}

		if err := m.RegisterGuest(ctx, guest); err != nil {
			m.l.LogWarnf("Skipping guest record %v: %v", i+1, err.Error())

			report.Skipped++

			continue
		}

		report.Loaded++
	}

	return report, nil
}

// ExportRoomsToRecords encodes the room catalog, one record per room, in
// insertion order.
func (m *Manager) ExportRoomsToRecords(ctx context.Context) ([]string, error) {
	rooms, err := m.storage.Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms for export: %w", err)
	}

	records := make([]string, 0, len(rooms))

	for _, room := range rooms {
		records = append(records, EncodeRoom(room))
	}

	return records, nil
}

func (m *Manager) ExportGuestsToRecords(ctx context.Context) ([]string, error) {
	guests, err := m.storage.Guests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guests for export: %w", err)
	}

	records := make([]string, 0, len(guests))

	for _, guest := range guests {
		records = append(records, EncodeGuest(guest))
	}

	return records, nil
}
