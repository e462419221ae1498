package entity

import (
	"backend/pkg/money"

	"gorm.io/gorm"
)

// MaxCartQuantity caps the quantity of a single cart line.
const MaxCartQuantity = 20

// CartItem is one line of a user's cart. Name and price are snapshots of
// the menu item at add time; they drift from the catalog until Sync
// refreshes them, and are never trusted for order pricing.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index;uniqueIndex:idx_cart_user_menu_item" json:"user_id"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_menu_item" json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	MenuItemName  string      `gorm:"not null" json:"menu_item_name"`
	MenuItemPrice money.Money `gorm:"type:decimal(10,2)" json:"menu_item_price"`
	Quantity      int         `gorm:"not null" json:"quantity"`
}

// Subtotal is derived from the stored snapshot price.
func (ci *CartItem) Subtotal() money.Money {
	return ci.MenuItemPrice.MulInt(ci.Quantity)
}
