package entity

import (
	"strings"
	"testing"

	"backend/pkg/apperr"
	"backend/pkg/money"
)

func TestNewOrderItemComputesSubtotal(t *testing.T) {
	oi, err := NewOrderItem(1, "Classic Burger", 2, money.FromFloat(12.99), "no onion")
	if err != nil {
		t.Fatalf("NewOrderItem: %v", err)
	}
	if oi.Subtotal.String() != "25.98" {
		t.Errorf("subtotal = %s, want 25.98", oi.Subtotal)
	}
	if err := oi.CheckSubtotal(); err != nil {
		t.Errorf("CheckSubtotal on fresh item: %v", err)
	}
}

func TestNewOrderItemValidation(t *testing.T) {
	price := money.FromFloat(9.99)
	tests := []struct {
		name         string
		itemName     string
		qty          int
		price        money.Money
		instructions string
		wantErr      bool
	}{
		{"valid", "Pizza", 1, price, "", false},
		{"zero quantity", "Pizza", 0, price, "", true},
		{"negative quantity", "Pizza", -2, price, "", true},
		{"zero price", "Pizza", 1, money.Zero(), "", true},
		{"empty name", "", 1, price, "", true},
		{"instructions at limit", "Pizza", 1, price, strings.Repeat("x", 200), false},
		{"instructions too long", "Pizza", 1, price, strings.Repeat("x", 201), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrderItem(1, tt.itemName, tt.qty, tt.price, tt.instructions)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("kind = %v, want KindValidation", apperr.KindOf(err))
			}
		})
	}
}

func mustItem(t *testing.T, qty int, price float64) OrderItem {
	t.Helper()
	oi, err := NewOrderItem(1, "item", qty, money.FromFloat(price), "")
	if err != nil {
		t.Fatal(err)
	}
	return oi
}

func TestNewOrderValidatesTotal(t *testing.T) {
	items := []OrderItem{mustItem(t, 2, 10.00), mustItem(t, 1, 5.98)}

	// exact total
	if _, err := NewOrder(7, items, money.FromFloat(25.98), ""); err != nil {
		t.Errorf("exact total rejected: %v", err)
	}
	// within epsilon
	if _, err := NewOrder(7, items, money.FromFloat(25.99), ""); err != nil {
		t.Errorf("total within 0.01 rejected: %v", err)
	}
	// beyond epsilon
	if _, err := NewOrder(7, items, money.FromFloat(26.10), ""); err == nil {
		t.Error("drifted total accepted")
	}
}

func TestNewOrderRejectsEmptyItems(t *testing.T) {
	if _, err := NewOrder(7, nil, money.FromFloat(1.00), ""); err == nil {
		t.Error("empty order accepted")
	}
}

func TestNewOrderRejectsLongNotes(t *testing.T) {
	items := []OrderItem{mustItem(t, 1, 10.00)}
	if _, err := NewOrder(7, items, money.FromFloat(10.00), strings.Repeat("n", 501)); err == nil {
		t.Error("notes over 500 chars accepted")
	}
}

func TestNewOrderStartsPending(t *testing.T) {
	items := []OrderItem{mustItem(t, 1, 10.00)}
	o, err := NewOrder(7, items, money.FromFloat(10.00), "")
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != StatusPending {
		t.Errorf("status = %s, want PENDING", o.Status)
	}
	if o.UserID != 7 {
		t.Errorf("user = %d, want 7", o.UserID)
	}
}
