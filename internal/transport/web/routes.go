package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avstrong/hotel/internal/hotel"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

// writeDomainError maps the typed domain failures onto HTTP statuses.
// Anything outside the taxonomy is a server fault.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	if inputErr := hotel.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	switch {
	case errors.Is(err, hotel.ErrInvalidPeriod):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, hotel.ErrGuestNotFound), errors.Is(err, hotel.ErrRoomNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, hotel.ErrDuplicateRoomNumber),
		errors.Is(err, hotel.ErrRoomUnavailable),
		errors.Is(err, hotel.ErrRoomNotOccupied):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		s.l.LogErrorf("Unexpected failure: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) registerRoomHandler(w http.ResponseWriter, r *http.Request) {
	var room hotel.Room

	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	// New rooms always start free; the occupancy flag is owned by the
	// reservation workflow.
	room.Occupied = false

	if err := s.manager.RegisterRoom(r.Context(), &room); err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, &room)
}

func (s *Server) registerGuestHandler(w http.ResponseWriter, r *http.Request) {
	var guest hotel.Guest

	if err := json.NewDecoder(r.Body).Decode(&guest); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if err := s.manager.RegisterGuest(r.Context(), &guest); err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, &guest)
}

func (s *Server) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	var input hotel.ReserveInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	reservation, err := s.manager.CreateReservation(r.Context(), &input)
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, reservation)
}

type checkOutInput struct {
	RoomNumber int `json:"room_number"`
}

func (s *Server) checkOutHandler(w http.ResponseWriter, r *http.Request) {
	var input checkOutInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if err := s.manager.CheckOut(r.Context(), input.RoomNumber); err != nil {
		s.writeDomainError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listAvailableRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.manager.ListAvailableRooms(r.Context())
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) listGuestsHandler(w http.ResponseWriter, r *http.Request) {
	guests, err := s.manager.ListGuests(r.Context())
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, guests)
}

func (s *Server) listReservationsHandler(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.manager.ListReservations(r.Context())
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, reservations)
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	handle := func(pattern string, h http.HandlerFunc) {
		r.Handle(pattern, s.applyMiddlewares(h, s.loggerMiddleware(), s.recoverMiddleware()))
	}

	handle("POST /api/rooms/v1", s.registerRoomHandler)
	handle("GET /api/rooms/available/v1", s.listAvailableRoomsHandler)
	handle("POST /api/guests/v1", s.registerGuestHandler)
	handle("GET /api/guests/v1", s.listGuestsHandler)
	handle("POST /api/reservations/v1", s.createReservationHandler)
	handle("GET /api/reservations/v1", s.listReservationsHandler)
	handle("POST /api/checkout/v1", s.checkOutHandler)
	handle(fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), s.livenessHandler)
}
