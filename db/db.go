// db/db.go
package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SAHAYOGESHWARAN/guries-sub010/audit"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

var DB *gorm.DB

// InitDB opens the relational store. SQLite backs local development,
// Postgres backs production; the switch is config-only, nothing above
// this package depends on the engine.
func InitDB() error {
	driver := viper.GetString("database.driver")
	dsn := viper.GetString("database.dsn")

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	logger.Info("Successfully connected to database")
	return nil
}

// Migrate creates or updates the schema for all owned tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Asset{},
		&model.WorkflowLogEntry{},
		&model.Service{},
		&model.SubService{},
		&model.ServiceAssetLink{},
		&model.SubServiceAssetLink{},
		&model.Country{},
		&model.Platform{},
		&model.WorkflowStageMaster{},
		&model.QCWeightageConfig{},
		&audit.QCAuditRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB releases the underlying connection pool.
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
