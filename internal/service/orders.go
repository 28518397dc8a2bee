package service

import (
	"errors"

	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

// OrderService is the order history surface.
type OrderService interface {
	ForUser(userID uint) ([]model.Order, error)
	ByID(pk uint) (model.Order, error)
}

type orderService struct{ db *gorm.DB }

func NewOrderService(db *gorm.DB) OrderService { return &orderService{db: db} }

func (s *orderService) ForUser(userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.Preload("Items.Item").Preload("BillingAddress").
		Where("user_id = ?", userID).
		Order("start_date desc").
		Find(&orders).Error
	return orders, err
}

func (s *orderService) ByID(pk uint) (model.Order, error) {
	var order model.Order
	err := s.db.Preload("Items.Item").Preload("BillingAddress").First(&order, pk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, ErrOrderNotFound
	}
	return order, err
}
