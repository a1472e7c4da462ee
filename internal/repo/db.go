package repo

import (
	"Nuremento/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN и прогоняет миграции.
// DSN вида postgres://... или "host=... user=..." уходит в PostgreSQL,
// всё остальное считается путём к файлу SQLite (modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	isSQLite := !isPostgresDSN(dsn)

	var dial gorm.Dialector
	if isSQLite {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	} else {
		dial = postgres.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if isSQLite {
		// SQLite пишет в один поток; одна connection заодно сохраняет :memory: базу живой
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы всех моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Memory{}, &model.LakeNote{}, &model.DailyPickState{}, &model.TimeCapsule{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func isPostgresDSN(dsn string) bool {
	d := strings.TrimSpace(dsn)
	if strings.HasPrefix(d, "postgres://") || strings.HasPrefix(d, "postgresql://") {
		return true
	}
	return strings.Contains(d, "host=") && strings.Contains(d, "dbname=")
}
