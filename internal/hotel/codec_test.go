package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoom_LuxuryRecord(t *testing.T) {
	room, err := DecodeRoom("LUXO;7;200.0;true")

	require.NoError(t, err)
	assert.Equal(t, VariantLuxury, room.Variant)
	assert.Equal(t, 7, room.Number)
	assert.InDelta(t, 200.0, room.BasePrice, 1e-9)
	assert.True(t, room.Occupied)
	assert.InDelta(t, 300.0, room.DailyRate(), 1e-9)
}

func TestDecodeRoom_StandardRecord(t *testing.T) {
	room, err := DecodeRoom("SIMPLES;101;100.00;false")

	require.NoError(t, err)
	assert.Equal(t, VariantStandard, room.Variant)
	assert.Equal(t, 101, room.Number)
	assert.InDelta(t, 100.0, room.BasePrice, 1e-9)
	assert.False(t, room.Occupied)
}

func TestDecodeRoom_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "too few fields", record: "LUXO;7;200.0"},
		{name: "too many fields", record: "LUXO;7;200.0;true;extra"},
		{name: "unknown variant tag", record: "SUITE;7;200.0;true"},
		{name: "bad number", record: "LUXO;seven;200.0;true"},
		{name: "bad price", record: "LUXO;7;cheap;true"},
		{name: "bad occupancy", record: "LUXO;7;200.0;maybe"},
		{name: "empty line", record: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRoom(tt.record)

			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestRoomRecords_RoundTrip(t *testing.T) {
	rooms := []*Room{
		{Variant: VariantStandard, Number: 101, BasePrice: 100, Occupied: false},
		{Variant: VariantLuxury, Number: 201, BasePrice: 250.50, Occupied: true},
		{Variant: VariantStandard, Number: 102, BasePrice: 80.25, Occupied: true},
	}

	for _, room := range rooms {
		decoded, err := DecodeRoom(EncodeRoom(room))

		require.NoError(t, err)
		assert.Equal(t, room, decoded)
	}
}

func TestGuestRecords_RoundTrip(t *testing.T) {
	guest := &Guest{Name: "Ana", TaxID: "111", Phone: "999"}

	decoded, err := DecodeGuest(EncodeGuest(guest))

	require.NoError(t, err)
	assert.Equal(t, guest, decoded)
}

func TestDecodeGuest_Malformed(t *testing.T) {
	_, err := DecodeGuest("Ana;111")

	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestEncodeGuest_SeparatorInFieldIsNotEscaped(t *testing.T) {
	// Documented limitation of the format: the record is corrupted, and the
	// corruption surfaces as a malformed record on decode.
	guest := &Guest{Name: "Ana;Maria", TaxID: "111", Phone: "999"}

	_, err := DecodeGuest(EncodeGuest(guest))

	assert.ErrorIs(t, err, ErrMalformedRecord)
}
