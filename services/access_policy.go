package services

import (
	"backend/entity"
)

// Caller identifies the authenticated principal a request acts as.
// Controllers build it from the JWT claims the auth middleware stored on
// the gin context.
type Caller struct {
	ID   uint
	Role entity.Role
}

func (c Caller) IsStaff() bool { return c.Role == entity.RoleAdminStaff }

// AccessPolicy holds the role/ownership rules layered on top of the raw
// state-machine edges. Kept free of persistence so the rules are
// unit-testable on their own.
type AccessPolicy struct{}

func NewAccessPolicy() *AccessPolicy { return &AccessPolicy{} }

// CanViewOrder: clients see only their own orders, staff sees all.
func (p *AccessPolicy) CanViewOrder(caller Caller, ownerID uint) bool {
	return caller.IsStaff() || caller.ID == ownerID
}

// CanChangeStatus decides whether the caller may take an order along a
// given edge. The edge itself must already be valid (CanTransition);
// this only answers the who-may question.
func (p *AccessPolicy) CanChangeStatus(caller Caller, ownerID uint, from, to entity.OrderStatus) bool {
	if caller.IsStaff() {
		return true
	}
	// Clients may only cancel their own order, and only while it is
	// still pending.
	return to == entity.StatusCancelled &&
		caller.ID == ownerID &&
		from == entity.StatusPending
}
