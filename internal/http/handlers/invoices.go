package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fleetops/internal/billing"
	"fleetops/internal/domain/models"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

type invoiceLinePayload struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	DiscountPct float64 `json:"discountPct"`
	IncludeVAT  bool    `json:"includeVAT"`
}

type invoicePayload struct {
	Number       string               `json:"number" binding:"required"`
	CustomerName string               `json:"customerName"`
	Lines        []invoiceLinePayload `json:"lines" binding:"required"`
	Subtotal     float64              `json:"subtotal"`
	VATAmount    float64              `json:"vatAmount"`
	Total        float64              `json:"total"`
	PaidAmount   float64              `json:"paidAmount"`
	DueDate      string               `json:"dueDate"`
	Status       string               `json:"status"`
}

// GET /api/invoices?status=pending&page=1&limit=50
func GetInvoices(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	limit, offset := pageParams(c)

	repo := repositories.InvoiceRepository{}
	list, err := repo.List(status, limit, offset)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch invoices", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/invoices/:id returns the invoice plus its computed breakdown.
func GetInvoiceByID(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	svc := invoiceService(c)
	inv, b, err := svc.Breakdown(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv, "breakdown": b})
}

// POST /api/invoices
func CreateInvoice(c *gin.Context) {
	var payload invoicePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	inv := models.Invoice{
		Number:        strings.TrimSpace(payload.Number),
		CustomerName:  strings.TrimSpace(payload.CustomerName),
		Subtotal:      payload.Subtotal,
		VATAmount:     payload.VATAmount,
		Total:         payload.Total,
		PaidAmount:    payload.PaidAmount,
		PaymentStatus: payload.Status,
	}
	for _, line := range payload.Lines {
		inv.Lines = append(inv.Lines, models.LineItem{
			Description: strings.TrimSpace(line.Description),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			DiscountPct: line.DiscountPct,
			IncludeVAT:  line.IncludeVAT,
		})
	}
	if strings.TrimSpace(payload.DueDate) != "" {
		due, err := utils.ParseDate(payload.DueDate)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "dueDate must be YYYY-MM-DD", err)
			return
		}
		inv.DueDate = due
	}

	svc := invoiceService(c)
	created, err := svc.CreateInvoice(inv)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type paymentPayload struct {
	Amount float64 `json:"amount" binding:"required"`
}

// POST /api/invoices/:id/payments
func RecordInvoicePayment(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	var payload paymentPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	svc := invoiceService(c)
	if err := svc.RecordPayment(id, payload.Amount); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment recorded"})
}

// GET /api/invoices/:id/pdf
func GetInvoicePDF(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	svc := services.DocsService{
		Config:    engineConfig(),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateInvoicePDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/invoices/portfolio?asOf=2025-03-15
func GetPortfolioSummary(c *gin.Context) {
	asOf := time.Now()
	if s := strings.TrimSpace(c.Query("asOf")); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "asOf must be YYYY-MM-DD", err)
			return
		}
		asOf = t
	}

	svc := invoiceService(c)
	summary, err := svc.Portfolio(asOf)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/invoices/pages returns invoices split into report pages of 10.
func GetInvoicePages(c *gin.Context) {
	repo := repositories.InvoiceRepository{}
	list, err := repo.List(strings.TrimSpace(c.Query("status")), 0, 0)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch invoices", err)
		return
	}
	pages := billing.Paginate(list)
	c.JSON(http.StatusOK, gin.H{
		"pageCount": billing.PageCount(len(list)),
		"pageSize":  billing.ReportPageSize,
		"pages":     pages,
	})
}

func invoiceService(c *gin.Context) services.InvoiceService {
	return services.InvoiceService{
		InvoiceRepo: repositories.InvoiceRepository{},
		Config:      engineConfig(),
		RequestID:   middleware.GetRequestID(c),
	}
}

func invoiceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
