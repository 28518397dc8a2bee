package database

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

// Seed creates a demo user and a starter catalog when the database is empty.
// Safe to call on every boot.
func Seed(db *gorm.DB) {
	seedDemoUser(db)
	seedCatalog(db)
}

func seedDemoUser(db *gorm.DB) {
	var user model.User
	result := db.Where("email = ?", "demo@shop.local").First(&user)
	if result.Error == nil {
		return
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("seed: lookup demo user: %v", result.Error)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed: hash demo password: %v", err)
		return
	}
	demo := model.User{
		Name:         "Demo Shopper",
		Email:        "demo@shop.local",
		PasswordHash: string(hash),
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Printf("seed: create demo user: %v", err)
		return
	}
	log.Println("seed: demo user created")
}

func seedCatalog(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	discount := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	categories := []model.Category{
		{
			Name: "Shirts",
			Slug: "shirts",
			Items: []model.Item{
				{Title: "Blue Shirt", Price: price("24.99"), Label: model.LabelPrimary,
					Description: "A plain blue shirt.", Slug: "blue-shirt", ImageURL: "/static/images/blue-shirt.jpg"},
				{Title: "White Shirt", Price: price("19.99"), DiscountPrice: discount("14.99"),
					Label: model.LabelDanger, Description: "A white shirt, on sale.",
					Slug: "white-shirt", ImageURL: "/static/images/white-shirt.jpg"},
			},
		},
		{
			Name: "Sportswear",
			Slug: "sportswear",
			Items: []model.Item{
				{Title: "Running Shoes", Price: price("69.99"), Label: model.LabelSecondary,
					Description: "Lightweight running shoes.", Slug: "running-shoes",
					ImageURL: "/static/images/running-shoes.jpg"},
			},
		},
		{
			Name: "Outwear",
			Slug: "outwear",
			Items: []model.Item{
				{Title: "Rain Jacket", Price: price("89.99"), DiscountPrice: discount("74.99"),
					Label: model.LabelPrimary, Description: "A waterproof jacket.",
					Slug: "rain-jacket", ImageURL: "/static/images/rain-jacket.jpg"},
			},
		},
	}

	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Printf("seed: create category %s: %v", categories[i].Slug, err)
			return
		}
	}
	log.Println("seed: starter catalog created")
}
