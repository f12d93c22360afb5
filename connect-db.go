package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/96TSH/nutrimate/config"
	"github.com/96TSH/nutrimate/internal/store"
)

// connectDatabase connects to the configured backend using GORM.
func connectDatabase(conf *config.Config) (*gorm.DB, error) {
	newLogger := gormLogger.Default.LogMode(gormLogger.Silent)

	if conf.Environment != "prod" {
		newLogger = gormLogger.New(
			log.New(os.Stdout, "\n", log.LstdFlags), // io writer
			gormLogger.Config{
				SlowThreshold:             time.Second,     // Slow SQL threshold
				LogLevel:                  gormLogger.Info, // Log level
				IgnoreRecordNotFoundError: true,            // Ignore ErrRecordNotFound error for logger
				Colorful:                  false,           // Disable color
			},
		)
	}

	gormConf := &gorm.Config{
		Logger:         newLogger,
		PrepareStmt:    false,
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch conf.StoreBackend {
	case config.BackendPostgres:
		dialector = postgres.Open(conf.DatabaseURI)
	case config.BackendSQLite:
		dialector = sqlite.Open(conf.DatabaseURI)
	default:
		return nil, fmt.Errorf("unknown store backend %q", conf.StoreBackend)
	}

	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		// It is ok to fail here, because database connection is essential for this service to work!
		return nil, err
	}

	rawDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	rawDB.SetMaxIdleConns(1)
	rawDB.SetMaxOpenConns(2)
	rawDB.SetConnMaxLifetime(time.Minute * 5)

	err = store.Migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}
