package repositories

import (
	"context"
	"time"

	"stockflow/internal/models"

	"github.com/shopspring/decimal"
)

// MonthlyTotal is one month's summed sales, keyed by the truncated month
// start so callers can line buckets up against a calendar window.
type MonthlyTotal struct {
	Month time.Time
	Total decimal.Decimal
}

type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	List(ctx context.Context) ([]*models.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Sale, error)
	MonthlyTotals(ctx context.Context, months int) ([]MonthlyTotal, error)
}

type saleRepo struct {
	db Database
}

func NewSaleRepo(db Database) SaleRepository {
	return &saleRepo{db: db}
}

func (r *saleRepo) Create(ctx context.Context, sale *models.Sale) error {
	query := `
		INSERT INTO sales (id, item_id, item_name, quantity, total, sale_date)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING sale_date
	`
	return r.db.QueryRow(ctx, query, sale.ID, sale.ItemID, sale.ItemName, sale.Quantity, sale.Total).
		Scan(&sale.SaleDate)
}

func (r *saleRepo) List(ctx context.Context) ([]*models.Sale, error) {
	query := `
		SELECT id, item_id, item_name, quantity, total, sale_date
		FROM sales
		ORDER BY sale_date DESC
	`
	return r.querySales(ctx, query)
}

func (r *saleRepo) ListRecent(ctx context.Context, limit int) ([]*models.Sale, error) {
	query := `
		SELECT id, item_id, item_name, quantity, total, sale_date
		FROM sales
		ORDER BY sale_date DESC
		LIMIT $1
	`
	return r.querySales(ctx, query, limit)
}

// MonthlyTotals sums sales per calendar month over the trailing window.
// Months without sales produce no row; the aggregation service zero-fills.
func (r *saleRepo) MonthlyTotals(ctx context.Context, months int) ([]MonthlyTotal, error) {
	query := `
		SELECT date_trunc('month', sale_date) AS month, SUM(total)
		FROM sales
		WHERE sale_date >= date_trunc('month', NOW()) - make_interval(months => $1)
		GROUP BY 1
		ORDER BY 1
	`
	rows, err := r.db.Query(ctx, query, months-1)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []MonthlyTotal
	for rows.Next() {
		var total MonthlyTotal
		if err := rows.Scan(&total.Month, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (r *saleRepo) querySales(ctx context.Context, query string, args ...any) ([]*models.Sale, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		sale := &models.Sale{}
		if err := rows.Scan(&sale.ID, &sale.ItemID, &sale.ItemName, &sale.Quantity, &sale.Total, &sale.SaleDate); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}
