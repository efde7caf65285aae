package billing

import (
	"time"

	"fleetops/internal/domain/models"
)

// FinancialSummary is the derived income/expense view over one period.
type FinancialSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetIncome     float64 `json:"netIncome"`
	// ProfitMargin is netIncome/totalIncome as a percentage, defined as 0
	// when there is no income.
	ProfitMargin float64 `json:"profitMargin"`
}

// SummarizePeriod totals income and expense transactions dated within
// [start, end] inclusive. Source transactions are never mutated.
func SummarizePeriod(txs []models.Transaction, start, end time.Time) FinancialSummary {
	var income, expenses float64
	for _, tx := range txs {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		switch tx.Type {
		case models.TxIncome:
			income += tx.Amount
		case models.TxExpense:
			expenses += tx.Amount
		}
	}

	net := income - expenses
	var margin float64
	if income > 0 {
		margin = net / income * 100
	}

	return FinancialSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     net,
		ProfitMargin:  margin,
	}
}

// MonthBounds returns the inclusive calendar-month bounds containing t,
// the default reporting period.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
