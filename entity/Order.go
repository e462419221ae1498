package entity

import (
	"backend/pkg/apperr"
	"backend/pkg/money"

	"gorm.io/gorm"
)

const maxOrderNotesLen = 500

// Order is the aggregate root: owner, embedded item snapshots, total and
// status. Orders are never hard-deleted; cancellation is a terminal
// status, not removal.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"user_id"`
	User   User `json:"-"`

	Items  []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Total  money.Money `gorm:"type:decimal(10,2)" json:"total"`
	Status OrderStatus `gorm:"type:varchar(20);not null;default:PENDING;index" json:"status"`
	Notes  string      `json:"notes,omitempty"`
}

// NewOrder builds a validated pending order. The total must equal the sum
// of item subtotals within 0.01.
func NewOrder(userID uint, items []OrderItem, total money.Money, notes string) (*Order, error) {
	if len(items) == 0 {
		return nil, apperr.Validation("order must have at least one item")
	}
	if len(notes) > maxOrderNotesLen {
		return nil, apperr.Validation("notes too long (max 500 characters)")
	}
	if !total.IsPositive() {
		return nil, apperr.Validation("total must be positive")
	}
	sum := money.Zero()
	for i := range items {
		if err := items[i].CheckSubtotal(); err != nil {
			return nil, err
		}
		sum = sum.Add(items[i].Subtotal)
	}
	if !total.EqualWithin(sum) {
		return nil, apperr.Validation("total does not match sum of item subtotals")
	}
	return &Order{
		UserID: userID,
		Items:  items,
		Total:  total,
		Status: StatusPending,
		Notes:  notes,
	}, nil
}
