package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

// CheckoutInput carries the billing address form. Email is the only optional
// field.
type CheckoutInput struct {
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	StreetAddress string
	Country       string
	Zip           string
}

func (in CheckoutInput) missingFields() []string {
	required := []struct{ name, value string }{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"phone_number", in.PhoneNumber},
		{"street_address", in.StreetAddress},
		{"country", in.Country},
		{"zip", in.Zip},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

type CheckoutService interface {
	// Checkout closes the user's open order: it snapshots the billing
	// address, marks every line and the order as ordered and assigns a
	// fresh reference code. The transition is one-way; a closed order is
	// never reopened.
	Checkout(userID uint, in CheckoutInput) (model.Order, error)
}

type checkoutService struct{ db *gorm.DB }

func NewCheckoutService(db *gorm.DB) CheckoutService { return &checkoutService{db: db} }

func (s *checkoutService) Checkout(userID uint, in CheckoutInput) (model.Order, error) {
	if missing := in.missingFields(); len(missing) > 0 {
		return model.Order{}, fmt.Errorf("%w: missing %s", ErrCheckoutInvalid, strings.Join(missing, ", "))
	}

	var order model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND ordered = ?", userID, false).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoActiveOrder
		} else if err != nil {
			return err
		}

		address := model.BillingAddress{
			UserID:        userID,
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			Email:         in.Email,
			PhoneNumber:   in.PhoneNumber,
			StreetAddress: in.StreetAddress,
			Country:       in.Country,
			Zip:           in.Zip,
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}

		err = tx.Model(&model.OrderItem{}).
			Where("order_id = ?", order.ID).
			Update("ordered", true).Error
		if err != nil {
			return err
		}

		code, err := uniqueRefCode(tx)
		if err != nil {
			return err
		}

		now := time.Now()
		order.BillingAddressID = &address.ID
		order.Ordered = true
		order.OrderedDate = &now
		order.RefCode = code
		return tx.Save(&order).Error
	})
	if err != nil {
		return model.Order{}, err
	}

	err = s.db.Preload("Items.Item").Preload("BillingAddress").First(&order, order.ID).Error
	return order, err
}
