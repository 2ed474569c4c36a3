package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/idgen/simple"
	"github.com/avstrong/hotel/internal/logger"
	"github.com/avstrong/hotel/internal/seed"
	"github.com/avstrong/hotel/internal/storage/file"
	"github.com/avstrong/hotel/internal/storage/memory"
	"github.com/avstrong/hotel/internal/transport/web"
)

type conf struct {
	host    string
	port    string
	dataDir string
}

func loadConf(l *logger.Logger) conf {
	if err := godotenv.Load(); err != nil {
		l.LogInfo("No .env file found, using environment and defaults")
	}

	getenv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}

		return fallback
	}

	return conf{
		host:    getenv("HOTEL_HOST", "localhost"),
		port:    getenv("HOTEL_PORT", "8092"),
		dataDir: getenv("HOTEL_DATA_DIR", "data"),
	}
}

// restore loads the persisted catalogs. On a first run (no room records at
// all) it seeds a starter catalog instead.
func restore(ctx context.Context, l *logger.Logger, store *file.Store, manager *hotel.Manager) error {
	roomRecords, err := store.Load(file.RoomsFile)
	if err != nil {
		return fmt.Errorf("load room records: %w", err)
	}

	if len(roomRecords) == 0 {
		if err := seed.Rooms(ctx, l, manager); err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}
	} else {
		report, err := manager.LoadRoomsFromRecords(ctx, roomRecords)
		if err != nil {
			return fmt.Errorf("load rooms: %w", err)
		}

		l.LogInfo("Loaded %v rooms, skipped %v records", report.Loaded, report.Skipped)
	}

	guestRecords, err := store.Load(file.GuestsFile)
	if err != nil {
		return fmt.Errorf("load guest records: %w", err)
	}

	report, err := manager.LoadGuestsFromRecords(ctx, guestRecords)
	if err != nil {
		return fmt.Errorf("load guests: %w", err)
	}

	l.LogInfo("Loaded %v guests, skipped %v records", report.Loaded, report.Skipped)

	return nil
}

// persist writes both catalogs back to disk. Failures are collected into one
// aggregate error so a broken rooms file does not stop the guests save.
func persist(ctx context.Context, store *file.Store, manager *hotel.Manager) error {
	var errs []error

	roomRecords, err := manager.ExportRoomsToRecords(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("export rooms: %w", err))
	} else if err := store.Save(file.RoomsFile, roomRecords); err != nil {
		errs = append(errs, fmt.Errorf("save rooms: %w", err))
	}

	guestRecords, err := manager.ExportGuestsToRecords(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("export guests: %w", err))
	} else if err := store.Save(file.GuestsFile, guestRecords); err != nil {
		errs = append(errs, fmt.Errorf("save guests: %w", err))
	}

	return errors.Join(errs...)
}

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	c := loadConf(l)

	storage := memory.New(memory.Config{L: l})
	idGen := simple.New()
	manager := hotel.New(l, storage, idGen)

	store, err := file.New(c.dataDir)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	if err := restore(ctx, l, store, manager); err != nil {
		return fmt.Errorf("restore persisted state: %w", err)
	}

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              c.host,
		Port:              c.port,
		ReadHeaderTimeout: 20, //nolint:gomnd
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(ctx, webConf, manager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	//nolint:contextcheck // serving context is done; persistence gets its own.
	if err := persist(context.Background(), store, manager); err != nil {
		return fmt.Errorf("persist state on shutdown: %w", err)
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
