package services

import (
	"fmt"
	"time"

	"fleetops/internal/billing"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"
)

// InvoiceService wraps invoice persistence with the billing computations.
type InvoiceService struct {
	InvoiceRepo repositories.InvoiceRepository
	Config      billing.Config
	RequestID   string
}

// Breakdown loads an invoice and aggregates it. Both the recorded totals and
// the recomputed line totals come back; callers display both.
func (s InvoiceService) Breakdown(id int64) (models.Invoice, billing.InvoiceBreakdown, error) {
	inv, err := s.InvoiceRepo.GetByID(id)
	if err != nil {
		return models.Invoice{}, billing.InvoiceBreakdown{}, err
	}
	b, err := billing.AggregateInvoice(s.Config, inv)
	if err != nil {
		return models.Invoice{}, billing.InvoiceBreakdown{}, err
	}
	if b.PrecisionAmbiguous {
		utils.LogEvent(s.RequestID, "invoice", "breakdown",
			fmt.Sprintf("invoice_id=%d recorded=%s recomputed=%s diverge beyond tolerance",
				id, utils.FormatAmount(b.RecordedTotal), utils.FormatAmount(b.RecomputedTotal)))
	}
	return inv, b, nil
}

// CreateInvoice validates lines up front, fills the recorded aggregates from
// the line computation when the caller left them zero, and persists.
func (s InvoiceService) CreateInvoice(inv models.Invoice) (models.Invoice, error) {
	if len(inv.Lines) == 0 {
		return models.Invoice{}, domain.ValidationError{Field: "lines", Msg: "invoice needs at least one line"}
	}

	var net, vat, total float64
	for _, line := range inv.Lines {
		lt, err := billing.ComputeLine(s.Config, line)
		if err != nil {
			return models.Invoice{}, err
		}
		net += lt.NetAfterDiscount
		vat += lt.VATAmount
		total += lt.TotalLine
	}
	if inv.Subtotal == 0 && inv.VATAmount == 0 && inv.Total == 0 {
		inv.Subtotal = net
		inv.VATAmount = vat
		inv.Total = total
	}

	inv.Remaining = inv.Total - inv.PaidAmount
	if inv.Remaining < 0 {
		inv.Remaining = 0
	}
	inv.PaymentStatus = models.NormalizePaymentStatus(inv.PaymentStatus)

	id, err := s.InvoiceRepo.Create(inv)
	if err != nil {
		return models.Invoice{}, err
	}
	inv.ID = id

	utils.LogEvent(s.RequestID, "invoice", "create",
		fmt.Sprintf("invoice_id=%d number=%s lines=%d total=%s", id, inv.Number, len(inv.Lines), utils.FormatAmount(inv.Total)))
	return inv, nil
}

// RecordPayment applies a payment against the recorded total. Remaining is
// clamped at zero; an overpayment is stored as fully paid and reported by
// the breakdown's overpaid flag.
func (s InvoiceService) RecordPayment(id int64, amount float64) error {
	if amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	inv, err := s.InvoiceRepo.GetByID(id)
	if err != nil {
		return err
	}

	paid := inv.PaidAmount + amount
	remaining := inv.Total - paid
	if remaining < 0 {
		remaining = 0
	}
	settled := paid >= inv.Total

	if err := s.InvoiceRepo.RecordPayment(id, paid, remaining, settled); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "invoice", "payment",
		fmt.Sprintf("invoice_id=%d paid=%s remaining=%s", id, utils.FormatAmount(paid), utils.FormatAmount(remaining)))
	return nil
}

// Portfolio summarizes all invoices for the dashboard cards.
func (s InvoiceService) Portfolio(asOf time.Time) (billing.PortfolioSummary, error) {
	invoices, err := s.InvoiceRepo.List("", 0, 0)
	if err != nil {
		return billing.PortfolioSummary{}, err
	}
	return billing.SummarizePortfolio(invoices, asOf), nil
}
