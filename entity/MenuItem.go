package entity

import (
	"backend/pkg/money"

	"gorm.io/gorm"
)

// MenuItem has no DB-side default on Available: gorm omits zero values
// on insert, so a column default of true would overwrite a false value.
// Defaulting happens in the service layer instead.
type MenuItem struct {
	gorm.Model
	CategoryID  uint        `gorm:"index" json:"category_id"`
	Category    Category    `json:"-"`
	Name        string      `gorm:"not null;index" json:"name"`
	Description string      `json:"description"`
	Price       money.Money `gorm:"type:decimal(10,2)" json:"price"`
	Available   bool        `gorm:"index" json:"available"`
	ImageURL    string      `json:"image_url"`

	OrderItems []OrderItem `json:"-"`
}
