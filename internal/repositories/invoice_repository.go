package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "fleetops/internal/config"
	intdb "fleetops/internal/db"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

type InvoiceRepository struct {
	DB *sql.DB
}

func (r InvoiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const invoiceSelect = `
	SELECT id,
	       number,
	       COALESCE(customer_name,''),
	       COALESCE(subtotal,0),
	       COALESCE(vat_amount,0),
	       COALESCE(total,0),
	       COALESCE(paid_amount,0),
	       COALESCE(remaining_amount,0),
	       due_date,
	       COALESCE(payment_status,'pending'),
	       created_at
	FROM invoices
`

// GetByID fetches one invoice with its lines.
func (r InvoiceRepository) GetByID(id int64) (models.Invoice, error) {
	if id <= 0 {
		return models.Invoice{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	inv, err := scanInvoice(r.db().QueryRow(invoiceSelect+` WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, domain.NotFoundError{Resource: "invoice"}
		}
		return models.Invoice{}, err
	}

	lines, err := r.linesByInvoice(id)
	if err != nil {
		return models.Invoice{}, err
	}
	inv.Lines = lines
	return inv, nil
}

// List returns invoices newest first, without their lines. Pass a status to
// filter; legacy "unpaid" rows match pending.
func (r InvoiceRepository) List(status string, limit, offset int) ([]models.Invoice, error) {
	query := invoiceSelect
	args := []any{}
	status = strings.TrimSpace(status)
	if status != "" {
		if status == models.PaymentPending {
			query += ` WHERE payment_status IN (?, 'unpaid')`
		} else {
			query += ` WHERE payment_status = ?`
		}
		args = append(args, status)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Create stores an invoice and its lines in one transaction.
func (r InvoiceRepository) Create(inv models.Invoice) (int64, error) {
	if strings.TrimSpace(inv.Number) == "" {
		return 0, domain.ValidationError{Field: "number", Msg: "must not be empty"}
	}

	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO invoices (number, customer_name, subtotal, vat_amount, total, paid_amount, remaining_amount, due_date, payment_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, COALESCE(NULLIF(?,''),'pending'), NOW())
	`, strings.TrimSpace(inv.Number), intdb.NullIfEmpty(inv.CustomerName),
		inv.Subtotal, inv.VATAmount, inv.Total, inv.PaidAmount, inv.Remaining,
		inv.DueDate, strings.TrimSpace(inv.PaymentStatus))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, line := range inv.Lines {
		if _, err := tx.Exec(`
			INSERT INTO invoice_lines (invoice_id, description, quantity, unit_price, discount_pct, include_vat)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, line.Description, line.Quantity, line.UnitPrice, line.DiscountPct, line.IncludeVAT); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// RecordPayment updates paid/remaining and flips payment_status when settled.
func (r InvoiceRepository) RecordPayment(id int64, paid, remaining float64, settled bool) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	status := models.PaymentPending
	if settled {
		status = models.PaymentPaid
	}
	res, err := r.db().Exec(`
		UPDATE invoices
		SET paid_amount = ?, remaining_amount = ?, payment_status = ?
		WHERE id = ?
	`, paid, remaining, status, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "invoice"}
	}
	return nil
}

func (r InvoiceRepository) linesByInvoice(invoiceID int64) ([]models.LineItem, error) {
	rows, err := r.db().Query(`
		SELECT id,
		       COALESCE(description,''),
		       COALESCE(quantity,0),
		       COALESCE(unit_price,0),
		       COALESCE(discount_pct,0),
		       COALESCE(include_vat,0)
		FROM invoice_lines
		WHERE invoice_id = ?
		ORDER BY id
	`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.LineItem{}
	for rows.Next() {
		var line models.LineItem
		if err := rows.Scan(&line.ID, &line.Description, &line.Quantity, &line.UnitPrice, &line.DiscountPct, &line.IncludeVAT); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func scanInvoice(row rowScanner) (models.Invoice, error) {
	var (
		inv     models.Invoice
		due     sql.NullTime
		created sql.NullTime
	)
	if err := row.Scan(
		&inv.ID, &inv.Number, &inv.CustomerName,
		&inv.Subtotal, &inv.VATAmount, &inv.Total,
		&inv.PaidAmount, &inv.Remaining,
		&due, &inv.PaymentStatus, &created,
	); err != nil {
		return models.Invoice{}, err
	}
	if due.Valid {
		inv.DueDate = due.Time
	}
	if created.Valid {
		inv.CreatedAt = created.Time
	}
	inv.PaymentStatus = models.NormalizePaymentStatus(inv.PaymentStatus)
	return inv, nil
}
