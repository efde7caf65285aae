package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"fleetops/internal/billing"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ClaimExtras are the manually-added charges on a claim hire agreement.
// They sit on top of the base hire total and never flow through the pricer.
type ClaimExtras struct {
	DeliveryCharge   float64 `json:"deliveryCharge"`
	CollectionCharge float64 `json:"collectionCharge"`
	InsurancePerDay  float64 `json:"insurancePerDay"`
	StorageTotal     float64 `json:"storageTotal"`
}

// DocsService renders invoice and hire-agreement PDFs.
type DocsService struct {
	InvoiceRepo repositories.InvoiceRepository
	RentalRepo  repositories.RentalRepository
	VehicleRepo repositories.VehicleRepository
	Config      billing.Config
	RequestID   string

	// Loaders override repo access in tests.
	InvoiceLoader func(int64) (models.Invoice, error)
	RentalLoader  func(int64) (models.Rental, models.Vehicle, error)
}

// GenerateInvoicePDF renders an itemized invoice, 10 lines per page.
func (s DocsService) GenerateInvoicePDF(invoiceID int64) ([]byte, string, error) {
	inv, err := s.loadInvoice(invoiceID)
	if err != nil {
		return nil, "", err
	}
	b, err := billing.AggregateInvoice(s.Config, inv)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("invoice_id=%d lines=%d", invoiceID, len(inv.Lines)))
	return buildInvoicePDF(inv, b)
}

// GenerateHireAgreement renders the hire agreement for a rental, adding the
// claim extras at the document layer.
func (s DocsService) GenerateHireAgreement(rentalID int64, extras ClaimExtras) ([]byte, string, error) {
	rental, vehicle, err := s.loadRental(rentalID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_agreement", fmt.Sprintf("rental_id=%d kind=%s", rentalID, rental.Kind))
	return buildAgreementPDF(rental, vehicle, extras)
}

func (s DocsService) loadInvoice(id int64) (models.Invoice, error) {
	if s.InvoiceLoader != nil {
		return s.InvoiceLoader(id)
	}
	return s.InvoiceRepo.GetByID(id)
}

func (s DocsService) loadRental(id int64) (models.Rental, models.Vehicle, error) {
	if s.RentalLoader != nil {
		return s.RentalLoader(id)
	}
	rental, err := s.RentalRepo.GetByID(id)
	if err != nil {
		return models.Rental{}, models.Vehicle{}, err
	}
	vehicle, err := s.VehicleRepo.GetByID(rental.VehicleID)
	if err != nil {
		return models.Rental{}, models.Vehicle{}, err
	}
	return rental, vehicle, nil
}

func buildInvoicePDF(inv models.Invoice, b billing.InvoiceBreakdown) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)

	writeHeader := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 18)
		pdf.Cell(0, 10, "INVOICE")
		pdf.Ln(12)

		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 7, "Invoice No : "+safe(inv.Number, "-"))
		pdf.Ln(7)
		pdf.Cell(0, 7, "Billed To  : "+safe(inv.CustomerName, "-"))
		pdf.Ln(7)
		if !inv.DueDate.IsZero() {
			pdf.Cell(0, 7, "Due Date   : "+utils.FormatDate(inv.DueDate))
			pdf.Ln(7)
		}
		pdf.Ln(3)

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(70, 7, "Description", "1", 0, "", false, 0, "")
		pdf.CellFormat(20, 7, "Qty", "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, "Unit", "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, "Net", "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, "VAT", "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, "Total", "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}

	writeHeader()
	for i, line := range inv.Lines {
		// Fixed-layout table: 10 lines per page.
		if i > 0 && i%billing.ReportPageSize == 0 {
			writeHeader()
		}
		lt := b.Lines[i]
		pdf.CellFormat(70, 7, truncate(safe(line.Description, "-"), 40), "1", 0, "", false, 0, "")
		pdf.CellFormat(20, 7, utils.FormatAmount(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, utils.FormatAmount(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, utils.FormatAmount(lt.NetAfterDiscount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, utils.FormatAmount(lt.VATAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, utils.FormatAmount(lt.TotalLine), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Net        : "+utils.FormatGBP(b.Net))
	pdf.Ln(6)
	pdf.Cell(0, 6, "VAT        : "+utils.FormatGBP(b.VAT))
	pdf.Ln(6)
	if b.DiscountTotal > 0 {
		pdf.Cell(0, 6, "Discount   : -"+utils.FormatGBP(b.DiscountTotal))
		pdf.Ln(6)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Total      : "+utils.FormatGBP(b.Total))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Paid       : "+utils.FormatGBP(b.Paid))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Owing      : "+utils.FormatGBP(b.Owing))
	pdf.Ln(6)
	if b.Overpaid {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "Overpaid by "+utils.FormatGBP(-b.OwingRaw))
		pdf.Ln(6)
	}
	// Recorded and recomputed figures are both shown when they disagree;
	// neither replaces the other.
	if b.PrecisionAmbiguous {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 5, fmt.Sprintf("Recorded total %s / itemized total %s",
			utils.FormatGBP(b.RecordedTotal), utils.FormatGBP(b.RecomputedTotal)))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render invoice pdf", Err: err}
	}
	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(inv.Number))
	return buf.Bytes(), filename, nil
}

func buildAgreementPDF(rental models.Rental, vehicle models.Vehicle, extras ClaimExtras) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Hire Agreement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "HIRE AGREEMENT")
	pdf.Ln(12)

	unit := "day"
	if rental.Kind == models.KindWeekly {
		unit = "week"
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Agreement No : HA-%d", rental.ID),
		fmt.Sprintf("Vehicle      : %s %s (%s)", safe(vehicle.Make, "-"), safe(vehicle.Model, ""), safe(vehicle.Registration, "-")),
		fmt.Sprintf("Hire Type    : %s", strings.ToUpper(rental.Kind)),
		fmt.Sprintf("From         : %s", utils.FormatDate(rental.Start)),
		fmt.Sprintf("To           : %s", utils.FormatDate(rental.End)),
		fmt.Sprintf("Duration     : %d %s(s)", rental.DurationUnits, unit),
		fmt.Sprintf("Rate         : %s per %s", utils.FormatGBP(rental.Rate), unit),
		fmt.Sprintf("Hire Total   : %s", utils.FormatGBP(rental.Total)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	insurance := extras.InsurancePerDay * float64(rental.DurationUnits)
	if rental.Kind == models.KindWeekly {
		insurance = extras.InsurancePerDay * float64(rental.DurationUnits*7)
	}
	grand := rental.Total + extras.DeliveryCharge + extras.CollectionCharge + insurance + extras.StorageTotal

	if extras != (ClaimExtras{}) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Additional Charges")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, "Delivery   : "+utils.FormatGBP(extras.DeliveryCharge))
		pdf.Ln(6)
		pdf.Cell(0, 6, "Collection : "+utils.FormatGBP(extras.CollectionCharge))
		pdf.Ln(6)
		pdf.Cell(0, 6, "Insurance  : "+utils.FormatGBP(insurance))
		pdf.Ln(6)
		pdf.Cell(0, 6, "Storage    : "+utils.FormatGBP(extras.StorageTotal))
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total Due  : "+utils.FormatGBP(grand))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Generated "+utils.FormatDateTime(time.Now())+". Signed copies to be retained by both parties.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render agreement pdf", Err: err}
	}
	filename := fmt.Sprintf("AGREEMENT_%d_%s.pdf", rental.ID, safeFilenamePart(vehicle.Registration))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
