package services

import (
	"fmt"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

// UpdateStatus moves an order along one edge of the state machine. The
// edge must exist in the transition table and the caller must be allowed
// to take it. The write is a conditional update guarded on the current
// status, so a concurrent transition cannot be overwritten.
func (s *OrderService) UpdateStatus(caller Caller, orderID uint, newStatus entity.OrderStatus) (*entity.Order, error) {
	if !newStatus.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("unknown order status: %s", newStatus))
	}

	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	if o.Status == newStatus {
		return nil, apperr.InvalidTransition(fmt.Sprintf("order is already %s", newStatus))
	}
	if !entity.CanTransition(o.Status, newStatus) {
		return nil, apperr.InvalidTransition(fmt.Sprintf("cannot change status from %s to %s", o.Status, newStatus))
	}
	if !s.Policy.CanChangeStatus(caller, o.UserID, o.Status, newStatus) {
		return nil, apperr.Forbidden("you are not allowed to make this status change")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Someone else moved the order first.
			return apperr.InvalidTransition(fmt.Sprintf("order left %s before the update applied", o.Status))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(o.ID)
}

// Cancel targets CANCELLED with clearer error signaling than the generic
// transition errors: an already-cancelled or delivered order is reported
// as such for every caller.
func (s *OrderService) Cancel(caller Caller, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	switch o.Status {
	case entity.StatusCancelled:
		return nil, apperr.AlreadyCancelled("order is already cancelled")
	case entity.StatusDelivered:
		return nil, apperr.AlreadyDelivered("a delivered order cannot be cancelled")
	}

	if !caller.IsStaff() {
		if o.UserID != caller.ID {
			return nil, apperr.Forbidden("you cannot cancel this order")
		}
		if o.Status != entity.StatusPending {
			return nil, apperr.Forbidden("only pending orders can be cancelled")
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.InvalidTransition(fmt.Sprintf("order left %s before the cancellation applied", o.Status))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(o.ID)
}
