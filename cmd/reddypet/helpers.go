package reddypet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"reddypet/internal/config"
	"reddypet/internal/logger"
	"reddypet/internal/pet"
	"reddypet/internal/storage"
)

// loadConfig reads the config file and applies the persistent flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if storeKind != "" {
		switch storeKind {
		case config.StoreFile, config.StoreSQLite:
			cfg.Pet.Store = storeKind
		default:
			return nil, fmt.Errorf("invalid --store %q (expected %s or %s)", storeKind, config.StoreFile, config.StoreSQLite)
		}
	}
	if statePath != "" {
		if cfg.Pet.Store == config.StoreSQLite {
			cfg.Pet.DBPath = statePath
		} else {
			cfg.Pet.StatePath = statePath
		}
	}
	return cfg, nil
}

// openStore builds the configured snapshot store. The returned close func
// is always non-nil.
func openStore(cfg *config.Config) (pet.Store, func() error, error) {
	if cfg.Pet.Store == config.StoreSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Pet.DBPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}
		db, err := storage.OpenDB(cfg.Pet.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewSQLiteStore(db, pet.StorageKey), db.Close, nil
	}
	return storage.NewFileStore(cfg.Pet.StatePath), func() error { return nil }, nil
}

// withController loads the pet from the configured store and hands the
// controller to run. Logs go to the configured file so they never mix with
// terminal output.
func withController(ctx context.Context, cfg *config.Config, run func(*pet.Controller) error) error {
	log, closeLog, err := logger.ToFile(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
		_ = closeLog()
	}()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()

	ctrl := pet.NewController(ctx, store, log)
	return run(ctrl)
}

// openTTY opens the controlling terminal for the click sound, falling back
// to stdout.
func openTTY() (io.Writer, error) {
	f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return os.Stdout, nil
	}
	return nil, err
}
