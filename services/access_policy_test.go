package services

import (
	"testing"

	"backend/entity"
)

func TestCanViewOrder(t *testing.T) {
	p := NewAccessPolicy()
	owner := Caller{ID: 1, Role: entity.RoleClient}
	stranger := Caller{ID: 2, Role: entity.RoleClient}
	staff := Caller{ID: 3, Role: entity.RoleAdminStaff}

	if !p.CanViewOrder(owner, 1) {
		t.Error("owner should view own order")
	}
	if p.CanViewOrder(stranger, 1) {
		t.Error("other client should not view foreign order")
	}
	if !p.CanViewOrder(staff, 1) {
		t.Error("staff should view any order")
	}
}

func TestCanChangeStatus(t *testing.T) {
	p := NewAccessPolicy()
	const ownerID = uint(1)
	owner := Caller{ID: ownerID, Role: entity.RoleClient}
	stranger := Caller{ID: 2, Role: entity.RoleClient}
	staff := Caller{ID: 3, Role: entity.RoleAdminStaff}

	tests := []struct {
		name   string
		caller Caller
		from   entity.OrderStatus
		to     entity.OrderStatus
		want   bool
	}{
		{"staff forward", staff, entity.StatusPending, entity.StatusInPreparation, true},
		{"staff ready", staff, entity.StatusInPreparation, entity.StatusReady, true},
		{"staff deliver", staff, entity.StatusReady, entity.StatusDelivered, true},
		{"staff cancel from ready", staff, entity.StatusReady, entity.StatusCancelled, true},
		{"owner cancel pending", owner, entity.StatusPending, entity.StatusCancelled, true},
		{"owner cancel after pending", owner, entity.StatusInPreparation, entity.StatusCancelled, false},
		{"owner cancel ready", owner, entity.StatusReady, entity.StatusCancelled, false},
		{"owner forward", owner, entity.StatusPending, entity.StatusInPreparation, false},
		{"stranger cancel pending", stranger, entity.StatusPending, entity.StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.CanChangeStatus(tt.caller, ownerID, tt.from, tt.to); got != tt.want {
				t.Errorf("CanChangeStatus(%v, %s->%s) = %v, want %v", tt.caller, tt.from, tt.to, got, tt.want)
			}
		})
	}
}
