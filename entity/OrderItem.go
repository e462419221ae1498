package entity

import (
	"backend/pkg/apperr"
	"backend/pkg/money"

	"gorm.io/gorm"
)

const maxSpecialInstructionsLen = 200

// OrderItem is an embedded snapshot of a menu item at order time. It has
// no life of its own outside its order and is only built through
// NewOrderItem, which enforces the subtotal arithmetic.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"order_id"`
	Order   Order `json:"-"`

	MenuItemID          uint        `json:"menu_item_id"`
	MenuItemName        string      `gorm:"not null" json:"menu_item_name"`
	Quantity            int         `gorm:"not null" json:"quantity"`
	UnitPrice           money.Money `gorm:"type:decimal(10,2)" json:"unit_price"`
	Subtotal            money.Money `gorm:"type:decimal(10,2)" json:"subtotal"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
}

// NewOrderItem builds a validated snapshot. The subtotal is computed, not
// taken from the caller, so it cannot drift from unit_price*quantity.
func NewOrderItem(menuItemID uint, name string, quantity int, unitPrice money.Money, instructions string) (OrderItem, error) {
	if name == "" {
		return OrderItem{}, apperr.Validation("menu item name is required")
	}
	if quantity <= 0 {
		return OrderItem{}, apperr.Validation("quantity must be positive")
	}
	if !unitPrice.IsPositive() {
		return OrderItem{}, apperr.Validation("unit price must be positive")
	}
	if len(instructions) > maxSpecialInstructionsLen {
		return OrderItem{}, apperr.Validation("special instructions too long (max 200 characters)")
	}
	return OrderItem{
		MenuItemID:          menuItemID,
		MenuItemName:        name,
		Quantity:            quantity,
		UnitPrice:           unitPrice,
		Subtotal:            unitPrice.MulInt(quantity),
		SpecialInstructions: instructions,
	}, nil
}

// CheckSubtotal re-validates a stored snapshot against its own arithmetic
// (tolerance 0.01, matching the persistence precision).
func (oi *OrderItem) CheckSubtotal() error {
	if !oi.Subtotal.EqualWithin(oi.UnitPrice.MulInt(oi.Quantity)) {
		return apperr.Validation("subtotal does not match quantity * unit_price")
	}
	return nil
}
