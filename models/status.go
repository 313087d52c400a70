package models

// Status is the booking status vocabulary. Rows are seeded at migration and
// never written afterwards.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

const (
	StatusAwaitingTechnician uint = 1
	StatusInRepair           uint = 2
	StatusDone               uint = 3
	StatusCancelled          uint = 4
	StatusAwaitingPayment    uint = 5
)

// Statuses returns the fixed vocabulary in seed order.
func Statuses() []Status {
	return []Status{
		{ID: StatusAwaitingTechnician, Name: "awaiting technician"},
		{ID: StatusInRepair, Name: "in repair"},
		{ID: StatusDone, Name: "done"},
		{ID: StatusCancelled, Name: "cancelled"},
		{ID: StatusAwaitingPayment, Name: "awaiting payment"},
	}
}

// StatusName resolves an id to its display name, "" if unknown.
func StatusName(id uint) string {
	for _, s := range Statuses() {
		if s.ID == id {
			return s.Name
		}
	}
	return ""
}

// statusTransitions is the directed graph of allowed booking flows.
// done and cancelled are terminal.
var statusTransitions = map[uint][]uint{
	StatusAwaitingTechnician: {StatusInRepair, StatusCancelled},
	StatusInRepair:           {StatusAwaitingPayment, StatusCancelled},
	StatusAwaitingPayment:    {StatusDone, StatusCancelled},
	StatusDone:               {},
	StatusCancelled:          {},
}

// CanTransition reports whether from -> to is an allowed status change.
// Staying on the same status is not a transition.
func CanTransition(from, to uint) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
