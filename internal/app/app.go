package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/ledger"
	"github.com/azeroual/comptable/internal/report"
	"github.com/azeroual/comptable/internal/service"
	"github.com/azeroual/comptable/internal/store"
)

type App struct {
	Store   *store.Store
	Service *service.Service
	Ledger  *ledger.Ledger
	Report  *report.Balance
}

// NewApp initializes config, database, services and the posting engine, and
// returns the App plus its cleanup function.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "comptable.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Store:   dbStore,
		Service: service.NewService(dbStore, cfg),
		Ledger:  ledger.New(dbStore),
		Report:  report.NewBalance(dbStore),
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".comptable"), nil
	}

	return filepath.Join(configDir, "comptable"), nil
}
