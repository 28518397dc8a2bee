package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

// Connect opens the postgres connection and runs migrations.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate brings the schema up to date for every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Item{},
		&model.BillingAddress{},
		&model.Order{},
		&model.OrderItem{},
		&model.Refund{},
		&model.Report{},
	)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
