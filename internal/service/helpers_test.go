package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"example.com/shop-go/internal/database"
	"example.com/shop-go/internal/model"
)

// testDB opens a private in-memory database and migrates the schema. The
// named shared-cache DSN keeps every pooled connection on the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) model.User {
	t.Helper()
	user := model.User{
		Name:         "Test Shopper",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestItem(t *testing.T, db *gorm.DB, title, price string, discount *string) model.Item {
	t.Helper()

	category := model.Category{Name: "Test Category", Slug: "cat-" + uuid.NewString()}
	require.NoError(t, db.Create(&category).Error)

	item := model.Item{
		Title:       title,
		Price:       decimal.RequireFromString(price),
		CategoryID:  category.ID,
		Label:       model.LabelPrimary,
		Description: "test item",
		Slug:        "item-" + uuid.NewString(),
		ImageURL:    "/static/images/test.jpg",
	}
	if discount != nil {
		d := decimal.RequireFromString(*discount)
		item.DiscountPrice = &d
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		PhoneNumber:   "+440000000",
		StreetAddress: "London, 1234 Main St",
		Country:       "GB",
		Zip:           "E1 6AN",
	}
}

func strptr(s string) *string { return &s }
