package domain

import "time"

const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

const (
	TxEarn       = "earn"
	TxRedeem     = "redeem"
	TxAdjustment = "adjustment"
)

// TierForPoints derives the tier from lifetime earned points.
func TierForPoints(points int) string {
	switch {
	case points >= 1000:
		return TierPlatinum
	case points >= 500:
		return TierGold
	case points >= 250:
		return TierSilver
	default:
		return TierBronze
	}
}

type Account struct {
	ID             int       `json:"id"`
	CustomerID     string    `json:"customer_id"`
	TotalPoints    int       `json:"total_points"`
	RedeemedPoints int       `json:"redeemed_points"`
	Tier           string    `json:"tier"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AvailablePoints is the spendable balance: lifetime earned minus redeemed.
func (a *Account) AvailablePoints() int {
	return a.TotalPoints - a.RedeemedPoints
}

// Transaction is an immutable loyalty ledger entry.
type Transaction struct {
	ID          int       `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Type        string    `json:"type"`
	Points      int       `json:"points"`
	OrderID     string    `json:"order_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
