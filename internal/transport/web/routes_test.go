package web_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/idgen/simple"
	"github.com/avstrong/hotel/internal/logger"
	"github.com/avstrong/hotel/internal/storage/memory"
	"github.com/avstrong/hotel/internal/transport/web"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	l := logger.New(log.New(io.Discard, "", 0))
	manager := hotel.New(l, memory.New(memory.Config{L: l}), simple.New())

	conf := web.Conf{
		L:                 l,
		ServerLogger:      log.New(io.Discard, "", 0),
		Host:              "localhost",
		Port:              "0",
		ReadHeaderTimeout: 20,
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(context.Background(), conf, manager)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Srv().Handler)
	t.Cleanup(ts.Close)

	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestLiveness(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts, "/liveness")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRegisterRoom(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/api/rooms/v1", `{"variant":"SIMPLES","number":101,"base_price":100}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = post(t, ts, "/api/rooms/v1", `{"variant":"LUXO","number":101,"base_price":200}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterRoom_BadInput(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/api/rooms/v1", `{"variant":"SUITE","number":-1,"base_price":-5}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fields map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fields))
	assert.Len(t, fields, 3)
}

func TestRegisterRoom_OccupancyNotClientSettable(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/api/rooms/v1", `{"variant":"SIMPLES","number":101,"base_price":100,"occupied":true}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = get(t, ts, "/api/rooms/available/v1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rooms []hotel.Room
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rooms))
	assert.Len(t, rooms, 1)
}

func TestReservationLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/api/rooms/v1", `{"variant":"SIMPLES","number":101,"base_price":100}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = post(t, ts, "/api/guests/v1", `{"name":"Ana","tax_id":"111","phone":"999"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := `{"guest_tax_id":"111","room_number":101,"check_in":"2024-01-01T00:00:00Z","check_out":"2024-01-05T00:00:00Z"}`

	resp = post(t, ts, "/api/reservations/v1", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reservation hotel.Reservation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reservation))
	assert.InDelta(t, 400.0, reservation.Total, 1e-9)

	// Same room again while occupied.
	resp = post(t, ts, "/api/reservations/v1", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = post(t, ts, "/api/checkout/v1", `{"room_number":101}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = post(t, ts, "/api/checkout/v1", `{"room_number":101}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = get(t, ts, "/api/reservations/v1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reservations []hotel.Reservation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reservations))
	assert.Len(t, reservations, 1)
}

func TestCreateReservation_ErrorStatuses(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/api/rooms/v1", `{"variant":"SIMPLES","number":101,"base_price":100}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = post(t, ts, "/api/guests/v1", `{"name":"Ana","tax_id":"111","phone":"999"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "unknown guest",
			body: `{"guest_tax_id":"000","room_number":101,"check_in":"2024-01-01T00:00:00Z","check_out":"2024-01-02T00:00:00Z"}`,
			want: http.StatusNotFound,
		},
		{
			name: "unknown room",
			body: `{"guest_tax_id":"111","room_number":999,"check_in":"2024-01-01T00:00:00Z","check_out":"2024-01-02T00:00:00Z"}`,
			want: http.StatusNotFound,
		},
		{
			name: "check-out before check-in",
			body: `{"guest_tax_id":"111","room_number":101,"check_in":"2024-03-05T00:00:00Z","check_out":"2024-03-01T00:00:00Z"}`,
			want: http.StatusBadRequest,
		},
		{
			name: "not json",
			body: `not json`,
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts, "/api/reservations/v1", tt.body)

			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}

	// None of the failures touched the room.
	resp = get(t, ts, "/api/rooms/available/v1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rooms []hotel.Room
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rooms))
	assert.Len(t, rooms, 1)
}

func TestListGuests(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/api/guests/v1", `{"name":"Ana","tax_id":"111","phone":"999"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = post(t, ts, "/api/guests/v1", `{"name":"Bia","tax_id":"222","phone":"888"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = get(t, ts, "/api/guests/v1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var guests []hotel.Guest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&guests))
	require.Len(t, guests, 2)
	assert.Equal(t, "Ana", guests[0].Name)
	assert.Equal(t, "Bia", guests[1].Name)
}
