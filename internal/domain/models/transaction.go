package models

import "time"

// Transaction types for the finance ledger.
const (
	TxIncome  = "income"
	TxExpense = "expense"
)

// Transaction is an immutable ledger row. Summarization never mutates these.
type Transaction struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type"`
	Category      string    `json:"category,omitempty"`
	Description   string    `json:"description,omitempty"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	PaymentStatus string    `json:"paymentStatus,omitempty"`
}
