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

// VAT rates are percentages with two decimal places, stored as basis points
// (20.00% -> 2000).

func vatRateToBps(rate decimal.Decimal) int64 {
	return rate.Shift(2).IntPart()
}

func vatRateFromBps(bps int64) decimal.Decimal {
	return decimal.New(bps, -2)
}

func (s *Store) CreateProduct(product *model.Product) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO products (name, description, unit_price_cents, vat_rate_bps, category_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare product SQL: %w", err)
	}
	defer stmt.Close()

	var categoryID sql.NullInt64
	if product.CategoryID != nil {
		categoryID = sql.NullInt64{Int64: *product.CategoryID, Valid: true}
	}

	var newID int64
	err = stmt.QueryRow(
		product.Name, product.Description,
		money.ToCents(product.UnitPrice), vatRateToBps(product.VATRate),
		categoryID, time.Now().Unix(),
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	return newID, nil
}

const productColumns = `
	p.id, p.name, p.description, p.unit_price_cents, p.vat_rate_bps, p.created_at,
	p.category_id, c.name`

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	product := &model.Product{}
	var priceCents, rateBps, createdAt int64
	var description, categoryName sql.NullString
	var categoryID sql.NullInt64

	err := row.Scan(
		&product.ID, &product.Name, &description, &priceCents, &rateBps, &createdAt,
		&categoryID, &categoryName,
	)
	if err != nil {
		return nil, err
	}

	product.Description = description.String
	product.UnitPrice = money.FromCents(priceCents)
	product.VATRate = vatRateFromBps(rateBps)
	product.CreatedAt = time.Unix(createdAt, 0)
	if categoryID.Valid {
		product.CategoryID = &categoryID.Int64
		product.Category = &model.Category{ID: categoryID.Int64, Name: categoryName.String}
	}
	return product, nil
}

func (s *Store) GetProductByID(id int64) (*model.Product, error) {
	row := s.db.QueryRow(`
		SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = ?
	`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query product %d: %w", id, err)
	}

	return product, nil
}

func (s *Store) GetAllProducts() ([]*model.Product, error) {
	rows, err := s.db.Query(`
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (s *Store) DeleteProduct(id int64) error {
	result, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("product %d", id))
}
