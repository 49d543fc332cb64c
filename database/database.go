package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vinaythakkar13/yatra-backend/config"
	"github.com/vinaythakkar13/yatra-backend/logger"
)

// Connect opens the postgres pool or exits the process.
func Connect(cfg *config.Config) *gorm.DB {
	logLevel := gormlogger.Warn
	if cfg.LogLevel == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database handle", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database ping failed", err)
	}

	logger.Success("Connected to PostgreSQL")
	return db
}

// Migrate auto-migrates models and then applies the constraints gorm tags
// cannot express.
func Migrate(db *gorm.DB, models ...interface{}) error {
	logger.Info("Running database migrations...")
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, idx := range partialIndexes {
		if err := db.Exec(idx).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	for _, c := range checkConstraints {
		if err := ensureConstraint(db, c); err != nil {
			return err
		}
	}

	logger.Success("Database migrations completed")
	return nil
}

type checkConstraint struct {
	table string
	name  string
	expr  string
}

var partialIndexes = []string{
	// A PNR may be reused within a yatra only after its previous booking was cancelled.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_active_pnr
		ON registrations (pnr, yatra_id) WHERE status <> 'cancelled'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_internal_pnr
		ON registrations (internal_pnr) WHERE internal_pnr IS NOT NULL`,
}

var checkConstraints = []checkConstraint{
	{
		table: "rooms",
		name:  "chk_rooms_occupancy",
		expr:  "is_occupied = (assigned_person_id IS NOT NULL)",
	},
	{
		table: "hotels",
		name:  "chk_hotels_room_counts",
		expr:  "occupied_rooms >= 0 AND occupied_rooms <= total_rooms AND available_rooms = total_rooms - occupied_rooms",
	},
}

func ensureConstraint(db *gorm.DB, c checkConstraint) error {
	var count int64
	err := db.Raw(`
		SELECT COUNT(*)
		FROM pg_constraint
		WHERE conname = ?
	`, c.name).Scan(&count).Error
	if err != nil {
		return fmt.Errorf("check for constraint %s: %w", c.name, err)
	}
	if count > 0 {
		return nil
	}

	logger.Infof("Adding constraint %s on %s", c.name, c.table)
	sql := fmt.Sprintf(`ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)`, c.table, c.name, c.expr)
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("add constraint %s: %w", c.name, err)
	}
	return nil
}
