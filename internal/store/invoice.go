package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/shopspring/decimal"
)

// CreateInvoiceWithLines inserts the invoice and all its lines in one
// database transaction.
func (s *Store) CreateInvoiceWithLines(inv *model.Invoice, lines []*model.InvoiceLine) (int64, error) {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return 0, fmt.Errorf("CreateInvoiceWithLines cannot be called within an existing transaction")
	}

	dbTx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to start database transaction: %w", err)
	}

	defer dbTx.Rollback()

	stmtInv, err := dbTx.Prepare(`
		INSERT INTO invoices (number, issue_date, due_date, status, subtotal_cents, vat_rate_bps, vat_cents, total_cents, notes, client_id, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare invoice SQL: %w", err)
	}
	defer stmtInv.Close()

	var newID int64
	err = stmtInv.QueryRow(
		inv.Number, inv.IssueDate.Format(dateFormat), inv.DueDate.Format(dateFormat),
		string(inv.Status),
		money.ToCents(inv.Subtotal), vatRateToBps(inv.VATRate),
		money.ToCents(inv.VAT), money.ToCents(inv.Total),
		inv.Notes, inv.ClientID, inv.CreatedBy, time.Now().Unix(),
	).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err, "invoices.number") {
			return 0, fmt.Errorf("invoice number %q already exists: %w", inv.Number, ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert invoice: %w", err)
	}

	stmtLine, err := dbTx.Prepare(`
		INSERT INTO invoice_lines (invoice_id, product_id, description, quantity, unit_price_cents, subtotal_cents, vat_rate_bps, vat_cents, total_cents)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare invoice line SQL: %w", err)
	}
	defer stmtLine.Close()

	for _, line := range lines {
		_, err := stmtLine.Exec(
			newID, line.ProductID, line.Description,
			line.Quantity.String(), money.ToCents(line.UnitPrice),
			money.ToCents(line.Subtotal), vatRateToBps(line.VATRate),
			money.ToCents(line.VAT), money.ToCents(line.Total),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert invoice line: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return 0, err
	}

	return newID, nil
}

const invoiceColumns = "id, number, issue_date, due_date, status, subtotal_cents, vat_rate_bps, vat_cents, total_cents, notes, client_id, created_by, created_at"

func scanInvoice(row interface{ Scan(...any) error }) (*model.Invoice, error) {
	inv := &model.Invoice{}
	var issueDate, dueDate, status string
	var notes sql.NullString
	var subtotalCents, rateBps, vatCents, totalCents, createdAt int64

	err := row.Scan(
		&inv.ID, &inv.Number, &issueDate, &dueDate, &status,
		&subtotalCents, &rateBps, &vatCents, &totalCents,
		&notes, &inv.ClientID, &inv.CreatedBy, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	inv.IssueDate, err = time.Parse(dateFormat, issueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse issue date %q: %w", issueDate, err)
	}
	inv.DueDate, err = time.Parse(dateFormat, dueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse due date %q: %w", dueDate, err)
	}

	inv.Status = model.InvoiceStatus(status)
	inv.Subtotal = money.FromCents(subtotalCents)
	inv.VATRate = vatRateFromBps(rateBps)
	inv.VAT = money.FromCents(vatCents)
	inv.Total = money.FromCents(totalCents)
	inv.Notes = notes.String
	inv.CreatedAt = time.Unix(createdAt, 0)
	return inv, nil
}

// GetInvoiceByID returns the invoice with its lines and client attached.
func (s *Store) GetInvoiceByID(id int64) (*model.Invoice, error) {
	row := s.db.QueryRow("SELECT "+invoiceColumns+" FROM invoices WHERE id = ?", id)

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invoice %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query invoice %d: %w", id, err)
	}

	inv.Lines, err = s.getInvoiceLines(id)
	if err != nil {
		return nil, err
	}

	inv.Client, err = s.GetClientByID(inv.ClientID)
	if err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Store) getInvoiceLines(invoiceID int64) ([]*model.InvoiceLine, error) {
	rows, err := s.db.Query(`
		SELECT id, invoice_id, product_id, description, quantity, unit_price_cents, subtotal_cents, vat_rate_bps, vat_cents, total_cents
		FROM invoice_lines
		WHERE invoice_id = ?
		ORDER BY id
	`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []*model.InvoiceLine
	for rows.Next() {
		line := &model.InvoiceLine{}
		var quantity string
		var priceCents, subtotalCents, rateBps, vatCents, totalCents int64

		err := rows.Scan(
			&line.ID, &line.InvoiceID, &line.ProductID, &line.Description,
			&quantity, &priceCents, &subtotalCents, &rateBps, &vatCents, &totalCents,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice line: %w", err)
		}

		line.Quantity, err = decimal.NewFromString(quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to parse line quantity %q: %w", quantity, err)
		}
		line.UnitPrice = money.FromCents(priceCents)
		line.Subtotal = money.FromCents(subtotalCents)
		line.VATRate = vatRateFromBps(rateBps)
		line.VAT = money.FromCents(vatCents)
		line.Total = money.FromCents(totalCents)
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// GetAllInvoices returns invoice headers, newest first, without lines.
func (s *Store) GetAllInvoices() ([]*model.Invoice, error) {
	rows, err := s.db.Query("SELECT " + invoiceColumns + " FROM invoices ORDER BY issue_date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*model.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

// DeleteInvoice removes the invoice; lines go with it via ON DELETE CASCADE.
func (s *Store) DeleteInvoice(id int64) error {
	result, err := s.db.Exec("DELETE FROM invoices WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %d: %w", id, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("invoice %d", id))
}
