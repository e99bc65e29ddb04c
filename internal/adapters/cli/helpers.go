package cli

import (
	"fmt"
	"net/url"

	"gorm.io/gorm"

	"github.com/andrescamacho/trip-go/internal/infrastructure/config"
	"github.com/andrescamacho/trip-go/internal/infrastructure/database"
)

// loadConfig loads configuration from --config, the search paths and TRIP_* variables
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// openDatabase connects and migrates the configured database
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.Database.Enabled {
		return nil, fmt.Errorf("database is disabled: set database.enabled or TRIP_DATABASE_ENABLED=true")
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// maskPassword masks passwords in connection strings for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
