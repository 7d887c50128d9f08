package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"zooarcadia/internal/config"
	"zooarcadia/internal/httpapi/models"
)

// ConnectDB opens the Postgres connection and brings the schema up to
// date via AutoMigrate. The connection is retried a few times so the
// API survives a database that is still starting.
func ConnectDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.IsDevelopment() {
		logLevel = logger.Warn
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err == nil {
			break
		}
		log.Warn("retrying database connection", "attempt", i+1, "error", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("connected to the database")
	return db, nil
}

// Migrate applies AutoMigrate for every model. Shared with the test
// suites, which run it against in-memory SQLite databases.
func Migrate(db *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.User{},
		&models.Habitat{},
		&models.Animal{},
		&models.Service{},
		&models.Avis{},
		&models.RapportVeterinaire{},
		&models.ConsommationNourriture{},
		&models.CommentaireHabitat{},
	}
	for _, m := range modelsToMigrate {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}

	// sanity check: the core tables must exist after migration
	for _, table := range []string{"users", "habitats", "animals"} {
		if !db.Migrator().HasTable(table) {
			return fmt.Errorf("missing table after migration: %s", table)
		}
	}
	return nil
}
