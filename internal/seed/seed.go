// Package seed puts a starter room catalog in place on a first run, when no
// persisted room records exist yet.
package seed

import (
	"context"
	"fmt"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
)

type registry interface {
	RegisterRoom(ctx context.Context, room *hotel.Room) error
}

func Rooms(ctx context.Context, l *logger.Logger, reg registry) error {
	rooms := []*hotel.Room{
		{
			Variant:   hotel.VariantStandard,
			Number:    101,
			BasePrice: 100,
		},
		{
			Variant:   hotel.VariantStandard,
			Number:    102,
			BasePrice: 100,
		},
		{
			Variant:   hotel.VariantLuxury,
			Number:    201,
			BasePrice: 200,
		},
	}

	for _, room := range rooms {
		if err := reg.RegisterRoom(ctx, room); err != nil {
			return fmt.Errorf("seed room %v: %w", room.Number, err)
		}
	}

	l.LogInfo("Seeded %v rooms", len(rooms))

	return nil
}
