package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// MenuItemRepository is the catalog store. The cart and order services
// only read from it (current name/price/availability); writes happen
// through the staff CRUD surface.
type MenuItemRepository struct{ DB *gorm.DB }

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuItemRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuItemRepository) List(categoryID *uint, available *bool) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	q := r.DB.Order("name ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if available != nil {
		q = q.Where("available = ?", *available)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *MenuItemRepository) Save(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuItemRepository) SetAvailability(id uint, available bool) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("available", available)
	return res.RowsAffected, res.Error
}

func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuItemRepository) CategoryExists(id uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}
