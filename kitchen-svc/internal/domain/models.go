package domain

import "time"

const (
	TicketPending   = "pending"
	TicketPreparing = "preparing"
	TicketReady     = "ready"
	TicketCompleted = "completed"
	TicketCancelled = "cancelled"
)

const (
	ChefAvailable = "available"
	ChefBusy      = "busy"
	ChefOffline   = "offline"
)

// transitions maps each ticket status to the statuses it may move to.
// Completed and cancelled are terminal: they map to nothing, so once a
// ticket is closed no update can reopen it.
var transitions = map[string][]string{
	TicketPending:   {TicketPreparing, TicketCompleted, TicketCancelled},
	TicketPreparing: {TicketReady, TicketCompleted, TicketCancelled},
	TicketReady:     {TicketCompleted},
}

func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsTerminal(status string) bool {
	return status == TicketCompleted || status == TicketCancelled
}

type Ticket struct {
	ID               int          `json:"id"`
	OrderID          string       `json:"order_id"`
	TableNumber      int          `json:"table_number,omitempty"`
	Status           string       `json:"status"`
	Items            []TicketItem `json:"items"`
	Priority         int          `json:"priority"`
	EstimatedMinutes int          `json:"estimated_minutes,omitempty"`
	ChefID           int          `json:"chef_id,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type TicketItem struct {
	MenuID   string `json:"menu_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type Chef struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Specialty     string    `json:"specialty,omitempty"`
	Status        string    `json:"status"`
	CurrentOrders int       `json:"current_orders"`
	CreatedAt     time.Time `json:"created_at"`
}

// ChefCapacity is the one place a chef's load is mutated. Acquire and
// Release keep the counter and the derived status in lockstep; the counter
// can never go below zero.
type ChefCapacity struct {
	BusyCount int
}

func (c *ChefCapacity) Acquire() {
	c.BusyCount++
}

func (c *ChefCapacity) Release() {
	if c.BusyCount > 0 {
		c.BusyCount--
	}
}

func (c ChefCapacity) Status() string {
	if c.BusyCount == 0 {
		return ChefAvailable
	}
	return ChefBusy
}

// TicketEvent is published to Kafka when a ticket changes state.
type TicketEvent struct {
	Type      string    `json:"type"`
	TicketID  int       `json:"ticket_id"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChefID    int       `json:"chef_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
