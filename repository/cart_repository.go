package repository

import (
	"backend/entity"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) FindByUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *CartRepository) GetByID(id uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := r.DB.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// FindByUserAndMenuItem returns nil without error when no line exists;
// (user_id, menu_item_id) is unique so at most one row matches.
func (r *CartRepository) FindByUserAndMenuItem(userID, menuItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) Create(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Create(it).Error
}

func (r *CartRepository) Save(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Save(it).Error
}

// Cart lines are deleted for real (Unscoped): a soft-deleted row would
// still hold the (user_id, menu_item_id) unique index and block re-adds.
func (r *CartRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.CartItem{}, id).Error
}

func (r *CartRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Unscoped().Delete(&entity.CartItem{}, ids).Error
}

// DeleteByUser clears the whole cart. Deleting an already-empty cart is
// not an error.
func (r *CartRepository) DeleteByUser(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}

// ---------------- staff stats ----------------

func (r *CartRepository) CountLines() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.CartItem{}).Count(&cnt).Error
	return cnt, err
}

func (r *CartRepository) CountUsersWithCart() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.CartItem{}).
		Distinct("user_id").
		Count(&cnt).Error
	return cnt, err
}

func (r *CartRepository) CountAbandonedSince(cutoff time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.CartItem{}).
		Where("updated_at < ?", cutoff).
		Distinct("user_id").
		Count(&cnt).Error
	return cnt, err
}

func (r *CartRepository) All() ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Find(&items).Error
	return items, err
}
