package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups items and is addressed by its slug in catalog URLs.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;size:100"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Items     []Item `gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemLabel selects the badge shown on an item card.
type ItemLabel string

const (
	LabelPrimary   ItemLabel = "primary"
	LabelSecondary ItemLabel = "secondary"
	LabelDanger    ItemLabel = "danger"
)

// Item is a product in the catalog.
type Item struct {
	ID            uint             `gorm:"primaryKey"`
	Title         string           `gorm:"not null;size:100"`
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CategoryID    uint             `gorm:"not null"`
	Category      Category         `gorm:"foreignKey:CategoryID"`
	Label         ItemLabel        `gorm:"type:varchar(20);not null;default:'primary'"`
	Description   string           `gorm:"type:text"`
	Slug          string           `gorm:"uniqueIndex;not null"`
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CurrentPrice is the discount price when one is set, the list price otherwise.
func (i Item) CurrentPrice() decimal.Decimal {
	if i.DiscountPrice != nil {
		return *i.DiscountPrice
	}
	return i.Price
}
