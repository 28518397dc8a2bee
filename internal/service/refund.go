package service

import (
	"errors"

	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

type RefundInput struct {
	RefCode     string
	Reason      string
	PhoneNumber string
	Email       string
}

// RefundService handles customer refund requests. The reference code is the
// possession token: whoever holds it may file against the order, and repeated
// requests each insert their own Refund row.
type RefundService interface {
	Request(in RefundInput) error
}

type refundService struct{ db *gorm.DB }

func NewRefundService(db *gorm.DB) RefundService { return &refundService{db: db} }

func (s *refundService) Request(in RefundInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		order, err := orderByRefCode(tx, in.RefCode)
		if err != nil {
			return err
		}

		err = tx.Model(&order).Update("refund_requested", true).Error
		if err != nil {
			return err
		}

		refund := model.Refund{
			OrderID:     order.ID,
			Reason:      in.Reason,
			PhoneNumber: in.PhoneNumber,
			Email:       in.Email,
		}
		return tx.Create(&refund).Error
	})
}

func orderByRefCode(tx *gorm.DB, refCode string) (model.Order, error) {
	if refCode == "" {
		return model.Order{}, ErrOrderNotFound
	}
	var order model.Order
	err := tx.Where("ref_code = ?", refCode).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, ErrOrderNotFound
	}
	return order, err
}
