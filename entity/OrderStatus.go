package entity

type OrderStatus string

const (
	StatusPending       OrderStatus = "PENDING"
	StatusInPreparation OrderStatus = "IN_PREPARATION"
	StatusReady         OrderStatus = "READY"
	StatusDelivered     OrderStatus = "DELIVERED"
	StatusCancelled     OrderStatus = "CANCELLED"
)

// AllStatuses lists every valid status, for input validation and stats.
var AllStatuses = []OrderStatus{
	StatusPending, StatusInPreparation, StatusReady, StatusDelivered, StatusCancelled,
}

// validTransitions is the full edge set of the order state machine.
// DELIVERED and CANCELLED are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:       {StatusInPreparation, StatusCancelled},
	StatusInPreparation: {StatusReady, StatusCancelled},
	StatusReady:         {StatusDelivered, StatusCancelled},
	StatusDelivered:     {},
	StatusCancelled:     {},
}

func (s OrderStatus) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0 && s.Valid()
}

// CanTransition reports whether from -> to is an edge of the state
// machine. A same-status request is not an edge.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
