package service

import (
	"errors"

	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

// CartService mutates the user's open order. Every mutation runs in a single
// transaction so a failure mid-sequence cannot leave the cart half-updated.
type CartService interface {
	// AddItem links the item to the user's open order, creating the order
	// if none exists. added reports whether a new cart line was created,
	// as opposed to an existing line's quantity being incremented.
	AddItem(userID uint, slug string) (added bool, err error)
	// DecreaseItem lowers the line quantity by one and removes the line
	// when it would drop below one.
	DecreaseItem(userID uint, slug string) error
	// RemoveItem removes the line regardless of quantity.
	RemoveItem(userID uint, slug string) error
	// OpenOrder returns the user's open order with items preloaded.
	OpenOrder(userID uint) (model.Order, error)
}

type cartService struct{ db *gorm.DB }

func NewCartService(db *gorm.DB) CartService { return &cartService{db: db} }

func (s *cartService) AddItem(userID uint, slug string) (bool, error) {
	var added bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		item, err := itemBySlug(tx, slug)
		if err != nil {
			return err
		}

		// The lookup alone does not stop a concurrent add from racing
		// past it; the partial unique index on orders(user_id) rejects
		// the second open order at commit.
		var order model.Order
		err = tx.Where("user_id = ? AND ordered = ?", userID, false).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			order = model.Order{UserID: userID}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var line model.OrderItem
		err = tx.Where("order_id = ? AND item_id = ?", order.ID, item.ID).First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line = model.OrderItem{
				UserID:   userID,
				ItemID:   item.ID,
				OrderID:  order.ID,
				Quantity: 1,
			}
			added = true
			return tx.Create(&line).Error
		} else if err != nil {
			return err
		}

		line.Quantity++
		return tx.Save(&line).Error
	})
	return added, err
}

func (s *cartService) DecreaseItem(userID uint, slug string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		line, err := cartLine(tx, userID, slug)
		if err != nil {
			return err
		}
		if line.Quantity > 1 {
			line.Quantity--
			return tx.Save(&line).Error
		}
		return tx.Delete(&line).Error
	})
}

func (s *cartService) RemoveItem(userID uint, slug string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		line, err := cartLine(tx, userID, slug)
		if err != nil {
			return err
		}
		return tx.Delete(&line).Error
	})
}

func (s *cartService) OpenOrder(userID uint) (model.Order, error) {
	var order model.Order
	err := s.db.Preload("Items.Item").
		Where("user_id = ? AND ordered = ?", userID, false).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, ErrNoActiveOrder
	}
	return order, err
}

func itemBySlug(tx *gorm.DB, slug string) (model.Item, error) {
	var item model.Item
	err := tx.Where("slug = ?", slug).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, ErrItemNotFound
	}
	return item, err
}

// cartLine resolves the line for the item inside the user's open order.
func cartLine(tx *gorm.DB, userID uint, slug string) (model.OrderItem, error) {
	item, err := itemBySlug(tx, slug)
	if err != nil {
		return model.OrderItem{}, err
	}

	var order model.Order
	err = tx.Where("user_id = ? AND ordered = ?", userID, false).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderItem{}, ErrNoActiveOrder
	} else if err != nil {
		return model.OrderItem{}, err
	}

	var line model.OrderItem
	err = tx.Where("order_id = ? AND item_id = ?", order.ID, item.ID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderItem{}, ErrItemNotInCart
	}
	return line, err
}
