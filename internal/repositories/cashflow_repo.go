package repositories

import (
	"context"

	"stockflow/internal/models"

	"github.com/shopspring/decimal"
)

type CashFlowRepository interface {
	Create(ctx context.Context, cashFlow *models.CashFlow) error
	List(ctx context.Context) ([]*models.CashFlow, error)
	// Balance sums inflows minus outflows over every record.
	Balance(ctx context.Context) (decimal.Decimal, error)
}

type cashFlowRepo struct {
	db Database
}

func NewCashFlowRepo(db Database) CashFlowRepository {
	return &cashFlowRepo{db: db}
}

func (r *cashFlowRepo) Create(ctx context.Context, cashFlow *models.CashFlow) error {
	query := `
		INSERT INTO cash_flows (id, description, amount, is_inflow, date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING date
	`
	return r.db.QueryRow(ctx, query, cashFlow.ID, cashFlow.Description, cashFlow.Amount, cashFlow.IsInflow).
		Scan(&cashFlow.Date)
}

func (r *cashFlowRepo) List(ctx context.Context) ([]*models.CashFlow, error) {
	query := `
		SELECT id, description, amount, is_inflow, date
		FROM cash_flows
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cashFlows []*models.CashFlow
	for rows.Next() {
		cashFlow := &models.CashFlow{}
		if err := rows.Scan(&cashFlow.ID, &cashFlow.Description, &cashFlow.Amount, &cashFlow.IsInflow, &cashFlow.Date); err != nil {
			return nil, err
		}
		cashFlows = append(cashFlows, cashFlow)
	}
	return cashFlows, rows.Err()
}

func (r *cashFlowRepo) Balance(ctx context.Context) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `
		SELECT COALESCE(SUM(CASE WHEN is_inflow THEN amount ELSE -amount END), 0)
		FROM cash_flows
	`
	if err := r.db.QueryRow(ctx, query).Scan(&balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
