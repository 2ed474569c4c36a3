package hotel

import (
	"fmt"
	"strconv"
	"strings"
)

// Line-record codec for the flat-file snapshots. One entity per line, fields
// separated by ";", no header and no escaping: a field containing the
// separator corrupts its record. That is a documented limitation of the
// format, not something the codec tries to repair.

const fieldSeparator = ";"

const (
	guestFieldCount = 3
	roomFieldCount  = 4
)

// variantFromTag is the single place a persisted variant tag is turned into
// a concrete room variant. Keep it that way: scattering tag literals around
// the codebase would reopen the factory.
func variantFromTag(tag string) (RoomVariant, error) {
	switch RoomVariant(tag) {
	case VariantLuxury:
		return VariantLuxury, nil
	case VariantStandard:
		return VariantStandard, nil
	default:
		return "", fmt.Errorf("unknown room variant %q: %w", tag, ErrMalformedRecord)
	}
}

// EncodeGuest renders "name;taxId;phone".
func EncodeGuest(guest *Guest) string {
	return strings.Join([]string{guest.Name, guest.TaxID, guest.Phone}, fieldSeparator)
}

func DecodeGuest(record string) (*Guest, error) {
	fields := strings.Split(record, fieldSeparator)
	if len(fields) != guestFieldCount {
		return nil, fmt.Errorf("guest record has %v fields, want %v: %w", len(fields), guestFieldCount, ErrMalformedRecord)
	}

	return &Guest{
		Name:  fields[0],
		TaxID: fields[1],
		Phone: fields[2],
	}, nil
}

// EncodeRoom renders "VARIANT;number;basePrice;occupied". The leading tag is
// what lets DecodeRoom pick the concrete pricing variant back.
func EncodeRoom(room *Room) string {
	return strings.Join([]string{
		string(room.Variant),
		strconv.Itoa(room.Number),
		strconv.FormatFloat(room.BasePrice, 'f', 2, 64),
		strconv.FormatBool(room.Occupied),
	}, fieldSeparator)
}

func DecodeRoom(record string) (*Room, error) {
	fields := strings.Split(record, fieldSeparator)
	if len(fields) != roomFieldCount {
		return nil, fmt.Errorf("room record has %v fields, want %v: %w", len(fields), roomFieldCount, ErrMalformedRecord)
	}

	variant, err := variantFromTag(fields[0])
	if err != nil {
		return nil, err
	}

	number, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("room number %q: %w", fields[1], ErrMalformedRecord)
	}

	basePrice, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("room base price %q: %w", fields[2], ErrMalformedRecord)
	}

	occupied, err := strconv.ParseBool(fields[3])
	if err != nil {
		return nil, fmt.Errorf("room occupancy %q: %w", fields[3], ErrMalformedRecord)
	}

	return &Room{
		Variant:   variant,
		Number:    number,
		BasePrice: basePrice,
		Occupied:  occupied,
	}, nil
}
