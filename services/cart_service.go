package services

import (
	"fmt"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/money"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultTaxRate is applied to the cart subtotal for the estimated total.
var DefaultTaxRate = decimal.NewFromFloat(0.10)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuItemRepository
	TaxRate  decimal.Decimal
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuItemRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, TaxRate: DefaultTaxRate}
}

// ----- DTOs -----

type AddToCartIn struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type BulkCartUpdateIn struct {
	Items []AddToCartIn `json:"items" binding:"required"`
}

// CartLineView is a cart line joined against the live catalog. Subtotal
// is recomputed from the current catalog price, not the stored snapshot.
type CartLineView struct {
	ID                  uint        `json:"id"`
	MenuItemID          uint        `json:"menu_item_id"`
	MenuItemName        string      `json:"menu_item_name"`
	MenuItemDescription string      `json:"menu_item_description,omitempty"`
	MenuItemPrice       money.Money `json:"menu_item_price"`
	MenuItemImageURL    string      `json:"menu_item_image_url,omitempty"`
	MenuItemAvailable   bool        `json:"menu_item_available"`
	Quantity            int         `json:"quantity"`
	Subtotal            money.Money `json:"subtotal"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type CartSummary struct {
	Items          []CartLineView `json:"items"`
	TotalItems     int            `json:"total_items"`
	TotalQuantity  int            `json:"total_quantity"`
	Subtotal       money.Money    `json:"subtotal"`
	EstimatedTax   money.Money    `json:"estimated_tax"`
	EstimatedTotal money.Money    `json:"estimated_total"`
	IsEmpty        bool           `json:"is_empty"`
	LastUpdated    *time.Time     `json:"last_updated,omitempty"`
}

// ----- Operations -----

// Add puts a menu item in the cart, or bumps the quantity of the
// existing line for the same item. The name/price snapshot is taken at
// first add.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Quantity <= 0 {
		return nil, apperr.Validation("quantity must be positive")
	}

	m, err := s.MenuRepo.GetByID(in.MenuItemID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	if !m.Available {
		return nil, apperr.Unavailable(fmt.Sprintf("menu item '%s' is not available", m.Name))
	}

	existing, err := s.CartRepo.FindByUserAndMenuItem(userID, m.ID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		newQty := existing.Quantity + in.Quantity
		if newQty > entity.MaxCartQuantity {
			return nil, apperr.LimitExceeded(fmt.Sprintf("maximum quantity per item is %d", entity.MaxCartQuantity))
		}
		existing.Quantity = newQty
		if err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.CartRepo.Save(tx, existing)
		}); err != nil {
			return nil, err
		}
		return existing, nil
	}

	if in.Quantity > entity.MaxCartQuantity {
		return nil, apperr.LimitExceeded(fmt.Sprintf("maximum quantity per item is %d", entity.MaxCartQuantity))
	}
	line := &entity.CartItem{
		UserID:        userID,
		MenuItemID:    m.ID,
		MenuItemName:  m.Name,
		MenuItemPrice: m.Price,
		Quantity:      in.Quantity,
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Create(tx, line)
	}); err != nil {
		return nil, err
	}
	return line, nil
}

// QuickAdd adds one unit of the item.
func (s *CartService) QuickAdd(userID, menuItemID uint) (*entity.CartItem, error) {
	return s.Add(userID, &AddToCartIn{MenuItemID: menuItemID, Quantity: 1})
}

// UpdateQuantity replaces the quantity of a line the caller owns.
func (s *CartService) UpdateQuantity(userID, lineID uint, quantity int) (*entity.CartItem, error) {
	if quantity < 1 || quantity > entity.MaxCartQuantity {
		return nil, apperr.Validation(fmt.Sprintf("quantity must be between 1 and %d", entity.MaxCartQuantity))
	}
	line, err := s.CartRepo.GetByID(lineID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("cart item not found")
		}
		return nil, err
	}
	if line.UserID != userID {
		return nil, apperr.Forbidden("cart item belongs to another user")
	}
	line.Quantity = quantity
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Save(tx, line)
	}); err != nil {
		return nil, err
	}
	return line, nil
}

// Remove deletes one line. A missing line is not an error; removing
// someone else's line is.
func (s *CartService) Remove(userID, lineID uint) error {
	line, err := s.CartRepo.GetByID(lineID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil
		}
		return err
	}
	if line.UserID != userID {
		return apperr.Forbidden("cart item belongs to another user")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Delete(tx, line.ID)
	})
}

// Clear empties the cart; clearing an empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteByUser(tx, userID)
	})
}

// View joins every line against current catalog state and aggregates
// totals at the current prices. Lines whose item vanished from the
// catalog, or is unavailable, are shown only when includeUnavailable.
func (s *CartService) View(userID uint, includeUnavailable bool) (*CartSummary, error) {
	lines, err := s.CartRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return &CartSummary{Items: []CartLineView{}, IsEmpty: true}, nil
	}

	views := make([]CartLineView, 0, len(lines))
	totalQty := 0
	subtotal := money.Zero()
	var lastUpdated time.Time

	for i := range lines {
		line := &lines[i]
		if line.UpdatedAt.After(lastUpdated) {
			lastUpdated = line.UpdatedAt
		}

		m, err := s.MenuRepo.GetByID(line.MenuItemID)
		if err != nil {
			if !repository.IsNotFound(err) {
				return nil, err
			}
			// Catalog record is gone; show the stale snapshot when asked,
			// never count it toward totals.
			if includeUnavailable {
				views = append(views, CartLineView{
					ID:                line.ID,
					MenuItemID:        line.MenuItemID,
					MenuItemName:      line.MenuItemName + " (unavailable)",
					MenuItemPrice:     line.MenuItemPrice,
					MenuItemAvailable: false,
					Quantity:          line.Quantity,
					Subtotal:          line.Subtotal(),
					CreatedAt:         line.CreatedAt,
					UpdatedAt:         line.UpdatedAt,
				})
			}
			continue
		}

		if !m.Available && !includeUnavailable {
			continue
		}

		v := CartLineView{
			ID:                  line.ID,
			MenuItemID:          m.ID,
			MenuItemName:        m.Name,
			MenuItemDescription: m.Description,
			MenuItemPrice:       m.Price,
			MenuItemImageURL:    m.ImageURL,
			MenuItemAvailable:   m.Available,
			Quantity:            line.Quantity,
			Subtotal:            m.Price.MulInt(line.Quantity),
			CreatedAt:           line.CreatedAt,
			UpdatedAt:           line.UpdatedAt,
		}
		views = append(views, v)
		totalQty += line.Quantity
		subtotal = subtotal.Add(v.Subtotal)
	}

	tax := subtotal.MulRate(s.TaxRate)
	out := &CartSummary{
		Items:          views,
		TotalItems:     len(views),
		TotalQuantity:  totalQty,
		Subtotal:       subtotal,
		EstimatedTax:   tax,
		EstimatedTotal: subtotal.Add(tax),
		IsEmpty:        len(views) == 0,
	}
	if !lastUpdated.IsZero() {
		out.LastUpdated = &lastUpdated
	}
	return out, nil
}

// Sync reconciles stored snapshots with the catalog: vanished items are
// dropped, drifted name/price snapshots refreshed. Returns the
// refreshed view.
func (s *CartService) Sync(userID uint) (*CartSummary, error) {
	lines, err := s.CartRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range lines {
			line := &lines[i]
			m, err := s.MenuRepo.GetByID(line.MenuItemID)
			if err != nil {
				if repository.IsNotFound(err) {
					if err := s.CartRepo.Delete(tx, line.ID); err != nil {
						return err
					}
					continue
				}
				return err
			}
			if line.MenuItemName != m.Name || !line.MenuItemPrice.Equal(m.Price) {
				line.MenuItemName = m.Name
				line.MenuItemPrice = m.Price
				if err := s.CartRepo.Save(tx, line); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.View(userID, false)
}

// BulkReplace clears the cart and re-adds the requested items in order.
// The first failing add aborts the rest and is surfaced to the caller.
func (s *CartService) BulkReplace(userID uint, in *BulkCartUpdateIn) (*CartSummary, error) {
	if err := s.Clear(userID); err != nil {
		return nil, err
	}
	for i := range in.Items {
		if _, err := s.Add(userID, &in.Items[i]); err != nil {
			return nil, err
		}
	}
	return s.View(userID, false)
}

// ----- staff stats -----

type CartStats struct {
	TotalUsersWithCart int64       `json:"total_users_with_cart"`
	TotalCartItems     int64       `json:"total_cart_items"`
	AverageCartValue   money.Money `json:"average_cart_value"`
	AbandonedCarts24h  int64       `json:"abandoned_carts_24h"`
	MostAddedItem      string      `json:"most_added_item,omitempty"`
}

// Stats aggregates over every user's cart, valued at the stored
// snapshots (staff dashboard, not a checkout figure).
func (s *CartService) Stats() (*CartStats, error) {
	users, err := s.CartRepo.CountUsersWithCart()
	if err != nil {
		return nil, err
	}
	linesTotal, err := s.CartRepo.CountLines()
	if err != nil {
		return nil, err
	}
	abandoned, err := s.CartRepo.CountAbandonedSince(time.Now().UTC().Add(-24 * time.Hour))
	if err != nil {
		return nil, err
	}

	stats := &CartStats{
		TotalUsersWithCart: users,
		TotalCartItems:     linesTotal,
		AbandonedCarts24h:  abandoned,
	}
	if users == 0 {
		return stats, nil
	}

	lines, err := s.CartRepo.All()
	if err != nil {
		return nil, err
	}
	grand := money.Zero()
	qtyByName := map[string]int{}
	for i := range lines {
		grand = grand.Add(lines[i].Subtotal())
		qtyByName[lines[i].MenuItemName] += lines[i].Quantity
	}
	stats.AverageCartValue = grand.Div(users)

	best := 0
	for name, qty := range qtyByName {
		if qty > best {
			best = qty
			stats.MostAddedItem = name
		}
	}
	return stats, nil
}
