package entity

import "testing"

func TestCanTransitionCoversWholeTable(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{StatusPending, StatusInPreparation}:   true,
		{StatusPending, StatusCancelled}:       true,
		{StatusInPreparation, StatusReady}:     true,
		{StatusInPreparation, StatusCancelled}: true,
		{StatusReady, StatusDelivered}:         true,
		{StatusReady, StatusCancelled}:         true,
	}

	// Every (from, to) pair, including same-status pairs, must match the
	// table exactly.
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := allowed[[2]OrderStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		terminal bool
	}{
		{StatusPending, false},
		{StatusInPreparation, false},
		{StatusReady, false},
		{StatusDelivered, true},
		{StatusCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("SHIPPED").Valid() {
		t.Error("SHIPPED should not be valid")
	}
	if OrderStatus("").Valid() {
		t.Error("empty status should not be valid")
	}
}
