package services

import (
	"fmt"
	"time"

	"fleetops/internal/billing"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"
)

// FinanceService produces period income/expense summaries.
type FinanceService struct {
	TxRepo    repositories.TransactionRepository
	RequestID string
}

// MonthlySummary reports the calendar month containing now, the default
// reporting period.
func (s FinanceService) MonthlySummary(now time.Time) (billing.FinancialSummary, error) {
	start, end := billing.MonthBounds(now)
	return s.PeriodSummary(start, end)
}

// PeriodSummary reports an arbitrary inclusive date range.
func (s FinanceService) PeriodSummary(start, end time.Time) (billing.FinancialSummary, error) {
	txs, err := s.TxRepo.ListByPeriod(start, end)
	if err != nil {
		return billing.FinancialSummary{}, err
	}
	summary := billing.SummarizePeriod(txs, start, end)
	utils.LogEvent(s.RequestID, "finance", "summary",
		fmt.Sprintf("start=%s end=%s income=%s expenses=%s margin=%s",
			utils.FormatDate(start), utils.FormatDate(end),
			utils.FormatAmount(summary.TotalIncome), utils.FormatAmount(summary.TotalExpenses),
			utils.FormatPercent(summary.ProfitMargin)))
	return summary, nil
}
