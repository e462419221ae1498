package services

import (
	"fmt"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/money"
	"backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuItemRepository
	UserRepo *repository.UserRepository
	Policy   *AccessPolicy
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuItemRepository,
	userRepo *repository.UserRepository,
	policy *AccessPolicy,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo,
		MenuRepo: menuRepo, UserRepo: userRepo, Policy: policy,
	}
}

// ----- DTOs -----

type OrderItemIn struct {
	MenuItemID          uint   `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateOrderIn struct {
	Items []OrderItemIn `json:"items"`
	Notes string        `json:"notes"`
}

// ExcludedItem records a cart line dropped during cart→order conversion.
type ExcludedItem struct {
	MenuItemID uint   `json:"menu_item_id"`
	Name       string `json:"name"`
	Reason     string `json:"reason"`
}

type CreateOrderResult struct {
	Order    *entity.Order  `json:"order"`
	Excluded []ExcludedItem `json:"excluded_items,omitempty"`
}

type OrderDetail struct {
	Order     *entity.Order `json:"order"`
	Username  string        `json:"username,omitempty"`
	UserEmail string        `json:"user_email,omitempty"`
}

type OrderList struct {
	Orders []entity.Order `json:"orders"`
	Total  int64          `json:"total"`
}

// ----- Create -----

// CreateFromItems builds an order from an explicit item list. Every item
// is priced at the catalog's current price, never a cart snapshot.
func (s *OrderService) CreateFromItems(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperr.EmptyOrder("order must have at least one item")
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	total := money.Zero()
	for _, it := range in.Items {
		m, err := s.MenuRepo.GetByID(it.MenuItemID)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil, apperr.NotFound(fmt.Sprintf("menu item not found: %d", it.MenuItemID))
			}
			return nil, err
		}
		if !m.Available {
			return nil, apperr.Unavailable(fmt.Sprintf("menu item '%s' is not available", m.Name))
		}
		oi, err := entity.NewOrderItem(m.ID, m.Name, it.Quantity, m.Price, it.SpecialInstructions)
		if err != nil {
			return nil, err
		}
		items = append(items, oi)
		total = total.Add(oi.Subtotal)
	}

	order, err := entity.NewOrder(userID, items, total, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	}); err != nil {
		return nil, err
	}
	return order, nil
}

// CreateFromCart converts the user's cart into an order. Lines whose
// menu item vanished or went unavailable are excluded per item and
// reported back; the surviving lines are priced at the current catalog
// price. The cart is cleared only after the order row is durably stored,
// inside the same transaction.
func (s *OrderService) CreateFromCart(userID uint, notes string) (*CreateOrderResult, error) {
	lines, err := s.CartRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperr.EmptyCart("cart is empty, add items before ordering")
	}

	items := make([]entity.OrderItem, 0, len(lines))
	total := money.Zero()
	var excluded []ExcludedItem
	stale := make([]uint, 0)

	for i := range lines {
		line := &lines[i]
		m, err := s.MenuRepo.GetByID(line.MenuItemID)
		if err != nil {
			if repository.IsNotFound(err) {
				stale = append(stale, line.ID)
				excluded = append(excluded, ExcludedItem{
					MenuItemID: line.MenuItemID,
					Name:       line.MenuItemName,
					Reason:     "removed from menu",
				})
				continue
			}
			return nil, err
		}
		if !m.Available {
			excluded = append(excluded, ExcludedItem{
				MenuItemID: m.ID,
				Name:       m.Name,
				Reason:     "not available",
			})
			continue
		}

		oi, err := entity.NewOrderItem(m.ID, m.Name, line.Quantity, m.Price, "")
		if err != nil {
			return nil, err
		}
		items = append(items, oi)
		total = total.Add(oi.Subtotal)
	}

	if len(items) == 0 {
		// Drop the stale lines anyway; the cart had lines but none were
		// orderable, which is a different failure than an empty cart.
		if len(stale) > 0 {
			if err := s.DB.Transaction(func(tx *gorm.DB) error {
				return s.CartRepo.DeleteByIDs(tx, stale)
			}); err != nil {
				return nil, err
			}
		}
		return nil, apperr.EmptyOrder("no items in the cart are available to order")
	}

	order, err := entity.NewOrder(userID, items, total, notes)
	if err != nil {
		return nil, err
	}

	// Order first, cart second; one transaction so a failure between the
	// two steps cannot lose the cart. A successful order empties the
	// whole cart, excluded lines included.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.DeleteByUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return &CreateOrderResult{Order: order, Excluded: excluded}, nil
}

// ----- Read -----

func (s *OrderService) Get(caller Caller, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	if !s.Policy.CanViewOrder(caller, o.UserID) {
		return nil, apperr.Forbidden("you cannot view this order")
	}

	detail := &OrderDetail{Order: o}
	if caller.IsStaff() {
		if u, err := s.UserRepo.GetByID(o.UserID); err == nil {
			detail.Username = u.Username
			detail.UserEmail = u.Email
		}
	}
	return detail, nil
}

// List applies the caller's filters; client callers are always pinned to
// their own orders regardless of any requested user filter.
func (s *OrderService) List(caller Caller, f repository.OrderFilter) (*OrderList, error) {
	if !caller.IsStaff() {
		uid := caller.ID
		f.UserID = &uid
	}
	orders, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	return &OrderList{Orders: orders, Total: total}, nil
}

// ----- Stats -----

type OrderStats struct {
	TotalOrders         int         `json:"total_orders"`
	PendingOrders       int         `json:"pending_orders"`
	InPreparationOrders int         `json:"in_preparation_orders"`
	ReadyOrders         int         `json:"ready_orders"`
	DeliveredOrders     int         `json:"delivered_orders"`
	CancelledOrders     int         `json:"cancelled_orders"`
	TotalRevenue        money.Money `json:"total_revenue"`
	AverageOrderValue   money.Money `json:"average_order_value"`
}

// Stats aggregates orders created in [from, to] (defaults: trailing 30
// days). Revenue counts DELIVERED orders only; the average is 0.00 when
// nothing was delivered.
func (s *OrderService) Stats(from, to *time.Time) (*OrderStats, error) {
	end := time.Now().UTC()
	if to != nil {
		end = *to
	}
	start := end.Add(-30 * 24 * time.Hour)
	if from != nil {
		start = *from
	}

	orders, err := s.Repo.FindCreatedBetween(start, end)
	if err != nil {
		return nil, err
	}

	stats := &OrderStats{TotalOrders: len(orders)}
	revenue := money.Zero()
	delivered := 0
	for i := range orders {
		switch orders[i].Status {
		case entity.StatusPending:
			stats.PendingOrders++
		case entity.StatusInPreparation:
			stats.InPreparationOrders++
		case entity.StatusReady:
			stats.ReadyOrders++
		case entity.StatusDelivered:
			stats.DeliveredOrders++
			delivered++
			revenue = revenue.Add(orders[i].Total)
		case entity.StatusCancelled:
			stats.CancelledOrders++
		}
	}
	stats.TotalRevenue = revenue
	if delivered > 0 {
		stats.AverageOrderValue = revenue.Div(int64(delivered))
	}
	return stats, nil
}
