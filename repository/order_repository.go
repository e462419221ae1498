package repository

import (
	"backend/entity"
	"backend/pkg/money"
	"time"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderFilter carries only the filters the caller actually set.
type OrderFilter struct {
	UserID   *uint
	Status   *entity.OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
	MinTotal *money.Money
	MaxTotal *money.Money
	Skip     int
	Limit    int
}

func (f *OrderFilter) apply(q *gorm.DB) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.DateFrom != nil {
		q = q.Where("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("created_at <= ?", *f.DateTo)
	}
	if f.MinTotal != nil {
		q = q.Where("total >= ?", *f.MinTotal)
	}
	if f.MaxTotal != nil {
		q = q.Where("total <= ?", *f.MaxTotal)
	}
	return q
}

// List returns a filtered page, newest first, plus the unpaged count.
func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Skip < 0 {
		f.Skip = 0
	}

	var total int64
	if err := f.apply(r.DB.Model(&entity.Order{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := f.apply(r.DB.Model(&entity.Order{})).
		Preload("Items").
		Order("created_at DESC").
		Offset(f.Skip).Limit(f.Limit).
		Find(&out).Error
	return out, total, err
}

// UpdateStatusGuard flips the status only if the order is still in the
// expected state. Zero rows affected means a concurrent transition won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

// FindCreatedBetween feeds the dashboard stats; items are not needed
// there, only status and total.
func (r *OrderRepository) FindCreatedBetween(from, to time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("created_at >= ? AND created_at <= ?", from, to).
		Find(&out).Error
	return out, err
}
