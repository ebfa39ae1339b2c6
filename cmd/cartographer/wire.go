package main

import (
	"context"
	"fmt"

	"github.com/akashic-archives/cartographer/internal/adapters/driven/storage/file"
	"github.com/akashic-archives/cartographer/internal/adapters/driven/storage/memory"
	"github.com/akashic-archives/cartographer/internal/adapters/driven/storage/sqlite"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/cli"
	"github.com/akashic-archives/cartographer/internal/config"
	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
	"github.com/akashic-archives/cartographer/internal/core/services"
	"github.com/akashic-archives/cartographer/internal/logger"
)

// backend is an opened record store plus what it needs to shut down.
type backend struct {
	store   driven.RecordStore
	watcher driven.ChangeWatcher
	close   func() error
}

func noClose() error { return nil }

// openBackend opens the record store selected by settings.
func openBackend(s domain.Settings) (*backend, error) {
	switch s.Backend {
	case domain.BackendFile:
		store, err := file.NewRecordStore(s.Root)
		if err != nil {
			return nil, fmt.Errorf("opening file archive: %w", err)
		}
		return &backend{store: store, watcher: file.NewWatcher(store), close: noClose}, nil
	case domain.BackendSQLite:
		store, err := sqlite.NewStore(s.Root)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite archive: %w", err)
		}
		return &backend{store: store, close: store.Close}, nil
	case domain.BackendMemory:
		logger.Warn("memory backend selected: changes are lost on exit")
		return &backend{store: memory.NewRecordStore(), close: noClose}, nil
	default:
		return nil, fmt.Errorf("%q: %w", s.Backend, domain.ErrUnsupportedBackend)
	}
}

// newInitializer returns the function the CLI calls before each command to
// resolve settings and wire the services over the selected backend.
func newInitializer(settings driving.SettingsService, lookup config.LookupFunc) cli.Initializer {
	return func(_ context.Context, o config.Overrides) (*cli.Services, func() error, error) {
		stored, err := settings.Get()
		if err != nil {
			return nil, nil, fmt.Errorf("loading settings: %w", err)
		}
		eff, err := config.Resolve(*stored, lookup, o)
		if err != nil {
			return nil, nil, err
		}

		b, err := openBackend(eff)
		if err != nil {
			return nil, nil, err
		}

		archive := services.NewArchiveService(b.store)
		return &cli.Services{
			Archive:   archive,
			Analytics: services.NewAnalyticsService(archive),
			Merge:     services.NewMergeService(b.store, archive),
			Export:    services.NewExportService(b.store, archive),
			Settings:  settings,
			Watcher:   b.watcher,
			Effective: eff,
		}, b.close, nil
	}
}
