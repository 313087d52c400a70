package models

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from uint
		to   uint
		want bool
	}{
		{"awaiting to in repair", StatusAwaitingTechnician, StatusInRepair, true},
		{"awaiting to cancelled", StatusAwaitingTechnician, StatusCancelled, true},
		{"awaiting cannot jump to done", StatusAwaitingTechnician, StatusDone, false},
		{"awaiting cannot jump to payment", StatusAwaitingTechnician, StatusAwaitingPayment, false},
		{"in repair to payment", StatusInRepair, StatusAwaitingPayment, true},
		{"in repair to cancelled", StatusInRepair, StatusCancelled, true},
		{"in repair cannot finish directly", StatusInRepair, StatusDone, false},
		{"in repair cannot go back", StatusInRepair, StatusAwaitingTechnician, false},
		{"payment to done", StatusAwaitingPayment, StatusDone, true},
		{"payment to cancelled", StatusAwaitingPayment, StatusCancelled, true},
		{"done is terminal", StatusDone, StatusInRepair, false},
		{"cancelled is terminal", StatusCancelled, StatusAwaitingTechnician, false},
		{"same status is not a transition", StatusInRepair, StatusInRepair, false},
		{"unknown source", 42, StatusInRepair, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestStatusName(t *testing.T) {
	if got := StatusName(StatusDone); got != "done" {
		t.Errorf("StatusName(done) = %q", got)
	}
	if got := StatusName(42); got != "" {
		t.Errorf("StatusName(42) = %q, want empty", got)
	}
}
