package domain

import "time"

// OrderMessage is the order lifecycle event consumed from Kafka.
type OrderMessage struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}

// Day returns the calendar day the event belongs to.
func (m OrderMessage) Day() string {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.Format("2006-01-02")
}

type DailySales struct {
	Day       string  `json:"day"`
	Orders    int     `json:"orders"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}

type CustomerSpend struct {
	CustomerID string  `json:"customer_id"`
	Total      float64 `json:"total"`
}
