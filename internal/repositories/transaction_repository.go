package repositories

import (
	"database/sql"
	"time"

	intconfig "fleetops/internal/config"
	intdb "fleetops/internal/db"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

type TransactionRepository struct {
	DB *sql.DB
}

func (r TransactionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByPeriod returns transactions dated within [start, end] inclusive,
// oldest first. Rows are read-only inputs to the summarizer.
func (r TransactionRepository) ListByPeriod(start, end time.Time) ([]models.Transaction, error) {
	if end.Before(start) {
		return nil, domain.ValidationError{Field: "period", Msg: "end is before start"}
	}
	// Ledger table is created by a later migration; absent means no history.
	if !intdb.HasTable(r.db(), "transactions") {
		return []models.Transaction{}, nil
	}
	rows, err := r.db().Query(`
		SELECT id,
		       type,
		       COALESCE(category,''),
		       COALESCE(description,''),
		       COALESCE(amount,0),
		       tx_date,
		       COALESCE(payment_status,'')
		FROM transactions
		WHERE tx_date >= ? AND tx_date <= ?
		ORDER BY tx_date, id
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.Type, &tx.Category, &tx.Description, &tx.Amount, &tx.Date, &tx.PaymentStatus); err != nil {
			return nil, err
		}
		list = append(list, tx)
	}
	return list, rows.Err()
}

// Create records one ledger row.
func (r TransactionRepository) Create(tx models.Transaction) (int64, error) {
	if tx.Type != models.TxIncome && tx.Type != models.TxExpense {
		return 0, domain.ValidationError{Field: "type", Msg: "must be income or expense"}
	}
	if tx.Amount < 0 {
		return 0, domain.ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	res, err := r.db().Exec(`
		INSERT INTO transactions (type, category, description, amount, tx_date, payment_status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, tx.Type, intdb.NullIfEmpty(tx.Category), intdb.NullIfEmpty(tx.Description),
		tx.Amount, tx.Date, intdb.NullIfEmpty(tx.PaymentStatus))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
