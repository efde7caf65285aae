package handlers

import (
	"net/http"
	"strings"
	"time"

	"fleetops/internal/domain/models"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/finance?start=2025-03-01&end=2025-03-31
// Without bounds the current calendar month is reported.
func GetFinanceReport(c *gin.Context) {
	svc := services.FinanceService{
		TxRepo:    repositories.TransactionRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	startStr := strings.TrimSpace(c.Query("start"))
	endStr := strings.TrimSpace(c.Query("end"))

	if startStr == "" && endStr == "" {
		summary, err := svc.MonthlySummary(time.Now())
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	start, err := utils.ParseDate(startStr)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "start must be YYYY-MM-DD", err)
		return
	}
	end, err := utils.ParseDate(endStr)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "end must be YYYY-MM-DD", err)
		return
	}
	// Make the end bound inclusive of the whole day.
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	summary, err := svc.PeriodSummary(start, end)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type transactionPayload struct {
	Type        string  `json:"type" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
}

// POST /api/transactions
func CreateTransaction(c *gin.Context) {
	var payload transactionPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD", err)
		return
	}

	repo := repositories.TransactionRepository{}
	id, err := repo.Create(models.Transaction{
		Type:        strings.ToLower(strings.TrimSpace(payload.Type)),
		Category:    strings.TrimSpace(payload.Category),
		Description: strings.TrimSpace(payload.Description),
		Amount:      payload.Amount,
		Date:        date,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "transaction recorded", "id": id})
}
