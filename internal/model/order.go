package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one cart line: an item with a quantity, owned by a user. A
// user has at most one unordered line per item; the line becomes immutable
// when its order is checked out.
type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null"`
	ItemID    uint `gorm:"not null;index:idx_order_items_line,unique"`
	Item      Item `gorm:"foreignKey:ItemID"`
	OrderID   uint `gorm:"not null;index:idx_order_items_line,unique"`
	Quantity  int  `gorm:"not null;default:1"`
	Ordered   bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalItemPrice is quantity times the list price.
func (oi OrderItem) TotalItemPrice() decimal.Decimal {
	return oi.Item.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// TotalItemDiscountPrice is quantity times the discount price. Zero when the
// item has no discount.
func (oi OrderItem) TotalItemDiscountPrice() decimal.Decimal {
	if oi.Item.DiscountPrice == nil {
		return decimal.Zero
	}
	return oi.Item.DiscountPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// AmountSaved is the difference between the list and discount totals.
func (oi OrderItem) AmountSaved() decimal.Decimal {
	return oi.TotalItemPrice().Sub(oi.TotalItemDiscountPrice())
}

// FinalPrice is what the line actually costs.
func (oi OrderItem) FinalPrice() decimal.Decimal {
	if oi.Item.DiscountPrice != nil {
		return oi.TotalItemDiscountPrice()
	}
	return oi.TotalItemPrice()
}

// Order is the cart while Ordered is false and an immutable purchase record
// afterwards. The ordered=true transition happens exactly once, at checkout,
// and is never reversed. The partial unique index on user_id holds the
// one-open-order-per-user invariant at the database.
type Order struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"index;not null;index:idx_orders_user_open,unique,where:ordered = false"`
	User             User   `gorm:"foreignKey:UserID"`
	RefCode          string `gorm:"size:10;index:idx_orders_ref_code,unique,where:ref_code <> ''"`
	Items            []OrderItem `gorm:"foreignKey:OrderID"`
	StartDate        time.Time   `gorm:"autoCreateTime"`
	OrderedDate      *time.Time
	Ordered          bool  `gorm:"not null;default:false"`
	BillingAddressID *uint
	BillingAddress   *BillingAddress `gorm:"foreignKey:BillingAddressID"`
	Received         bool            `gorm:"not null;default:false"`
	RefundRequested  bool            `gorm:"not null;default:false"`
	RefundGranted    bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Total sums the final price of every line.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, oi := range o.Items {
		total = total.Add(oi.FinalPrice())
	}
	return total
}

// BillingAddress is the contact/shipping snapshot captured at checkout. It is
// written once and never updated, so later profile changes cannot rewrite the
// history of a placed order.
type BillingAddress struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"index;not null"`
	FirstName     string `gorm:"not null;size:100"`
	LastName      string `gorm:"not null;size:100"`
	Email         string `gorm:"size:254"`
	PhoneNumber   string `gorm:"not null;size:13"`
	StreetAddress string `gorm:"not null;size:100"`
	Country       string `gorm:"not null;size:100"`
	Zip           string `gorm:"not null;size:100"`
	CreatedAt     time.Time
}

// FullName joins first and last name for form pre-fill.
func (b BillingAddress) FullName() string {
	return b.FirstName + " " + b.LastName
}

// Refund is a customer refund request against a placed order. Requests are
// not deduplicated: asking twice leaves two rows.
type Refund struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     uint   `gorm:"index;not null"`
	Order       Order  `gorm:"foreignKey:OrderID"`
	Reason      string `gorm:"type:text;not null"`
	Accepted    bool   `gorm:"not null;default:false"`
	PhoneNumber string `gorm:"size:13"`
	Email       string `gorm:"size:254"`
	CreatedAt   time.Time
}

// Report is a customer problem report against a placed order. RefCode is
// copied from the order at creation time so reports can be found by code
// without a join.
type Report struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     uint   `gorm:"index;not null"`
	Order       Order  `gorm:"foreignKey:OrderID"`
	Reason      string `gorm:"type:text;not null"`
	FullName    string `gorm:"size:200"`
	PhoneNumber string `gorm:"size:13"`
	Email       string `gorm:"size:254"`
	RefCode     string `gorm:"size:10;index"`
	CreatedAt   time.Time
}
