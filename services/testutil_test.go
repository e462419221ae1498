package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"backend/entity"
	"backend/pkg/money"
	"backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// newTestDB opens a private in-memory database per test. The named
// shared-cache DSN keeps every pooled connection on the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewMenuItemRepository(db))
	return svc, db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuItemRepository(db),
		repository.NewUserRepository(db),
		NewAccessPolicy(),
	)
	return svc, db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64, available bool) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		CategoryID: 1,
		Name:       name,
		Price:      money.FromFloat(price),
		Available:  available,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return m
}

func seedUser(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{
		Username: username,
		Email:    username + "@test.local",
		Password: "x",
		Role:     role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func cartLineCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var cnt int64
	if err := db.Model(&entity.CartItem{}).Where("user_id = ?", userID).Count(&cnt).Error; err != nil {
		t.Fatalf("count cart lines: %v", err)
	}
	return cnt
}
