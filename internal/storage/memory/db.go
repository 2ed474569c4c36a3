package memory

import (
	"context"
	"sync"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB keeps the catalogs in memory. Rooms and guests are held in insertion
// order for reporting; rooms are additionally indexed by number. Readers get
// copies, so the only way to change a room's occupancy is SetRoomOccupied.
type DB struct {
	mu            sync.Mutex
	l             *logger.Logger
	rooms         []*hotel.Room
	roomsByNumber map[int]*hotel.Room
	guests        []*hotel.Guest
	reservations  []*hotel.Reservation
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:             conf.L,
		roomsByNumber: make(map[int]*hotel.Room),
	}
}

func (db *DB) InsertRoom(_ context.Context, room *hotel.Room) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.roomsByNumber[room.Number]; exists {
		return hotel.ErrDuplicateRoomNumber
	}

	stored := *room
	db.rooms = append(db.rooms, &stored)
	db.roomsByNumber[stored.Number] = &stored

	return nil
}

func (db *DB) RoomByNumber(_ context.Context, number int) (*hotel.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	room, exists := db.roomsByNumber[number]
	if !exists {
		return nil, hotel.ErrRecordNotFound
	}

	view := *room

	return &view, nil
}

func (db *DB) Rooms(_ context.Context) ([]*hotel.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rooms := make([]*hotel.Room, 0, len(db.rooms))

	for _, room := range db.rooms {
		view := *room
		rooms = append(rooms, &view)
	}

	return rooms, nil
}

// SetRoomOccupied is the single choke point for occupancy changes. It
// rejects a no-op transition, which doubles as the availability guard when
// two reservation attempts race for the same room.
func (db *DB) SetRoomOccupied(_ context.Context, number int, occupied bool) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	room, exists := db.roomsByNumber[number]
	if !exists {
		return hotel.ErrRecordNotFound
	}

	if room.Occupied == occupied {
		if occupied {
			return hotel.ErrRoomUnavailable
		}

		return hotel.ErrRoomNotOccupied
	}

	room.Occupied = occupied

	return nil
}

func (db *DB) InsertGuest(_ context.Context, guest *hotel.Guest) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored := *guest
	db.guests = append(db.guests, &stored)

	return nil
}

// GuestByTaxID returns the first guest registered with the given tax ID.
// Uniqueness of tax IDs is not enforced, so later duplicates are shadowed.
func (db *DB) GuestByTaxID(_ context.Context, taxID string) (*hotel.Guest, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, guest := range db.guests {
		if guest.TaxID == taxID {
			view := *guest

			return &view, nil
		}
	}

	return nil, hotel.ErrRecordNotFound
}

func (db *DB) Guests(_ context.Context) ([]*hotel.Guest, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	guests := make([]*hotel.Guest, 0, len(db.guests))

	for _, guest := range db.guests {
		view := *guest
		guests = append(guests, &view)
	}

	return guests, nil
}

func (db *DB) AppendReservation(_ context.Context, reservation *hotel.Reservation) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored := *reservation
	db.reservations = append(db.reservations, &stored)

	return nil
}

func (db *DB) Reservations(_ context.Context) ([]*hotel.Reservation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	reservations := make([]*hotel.Reservation, 0, len(db.reservations))

	for _, reservation := range db.reservations {
		view := *reservation
		reservations = append(reservations, &view)
	}

	return reservations, nil
}
