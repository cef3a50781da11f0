package repositories

import (
	"context"

	"stockflow/internal/models"

	"github.com/google/uuid"
)

type ItemRepository interface {
	// AddStock inserts the item or, when the natural key already exists,
	// increments the stored quantity. The item is refreshed in place with
	// the persisted row.
	AddStock(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)
	ListLowStock(ctx context.Context) ([]*models.Item, error)
	// DecrementStock subtracts quantity only if enough stock is available;
	// pgx.ErrNoRows signals the guard rejected the write.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*models.Item, error)
	StockSummary(ctx context.Context) (*models.StockSummary, error)
}

type itemRepo struct {
	db Database
}

func NewItemRepo(db Database) ItemRepository {
	return &itemRepo{db: db}
}

const itemColumns = `id, name, brand, type, quantity, low_stock_threshold, created_at, updated_at`

// The upsert is a single statement, so two concurrent AddStock calls for
// the same natural key serialize inside Postgres and both increments land.
// A merge leaves the stored threshold untouched.
func (r *itemRepo) AddStock(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, name, brand, type, quantity, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (name, brand, type) DO UPDATE SET quantity = items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING ` + itemColumns + `
	`
	return r.db.QueryRow(ctx, query, item.ID, item.Name, item.Brand, item.Type, item.Quantity, item.LowStockThreshold).
		Scan(&item.ID, &item.Name, &item.Brand, &item.Type, &item.Quantity, &item.LowStockThreshold, &item.CreatedAt, &item.UpdatedAt)
}

func (r *itemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item := &models.Item{}
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.Brand, &item.Type, &item.Quantity, &item.LowStockThreshold, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepo) List(ctx context.Context) ([]*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY created_at DESC
	`
	return r.queryItems(ctx, query)
}

func (r *itemRepo) ListLowStock(ctx context.Context) ([]*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE quantity < low_stock_threshold
	`
	return r.queryItems(ctx, query)
}

// DecrementStock is the stock check and the decrement in one statement:
// no other sale can observe a quantity between the two, and the CHECK
// constraint never trips because the guard rejects oversells first.
func (r *itemRepo) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*models.Item, error) {
	item := &models.Item{}
	query := `
		UPDATE items
		SET quantity = quantity - $2, updated_at = NOW()
		WHERE id = $1 AND quantity >= $2
		RETURNING ` + itemColumns + `
	`
	err := r.db.QueryRow(ctx, query, id, quantity).
		Scan(&item.ID, &item.Name, &item.Brand, &item.Type, &item.Quantity, &item.LowStockThreshold, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepo) StockSummary(ctx context.Context) (*models.StockSummary, error) {
	summary := &models.StockSummary{}
	query := `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0), COUNT(*) FILTER (WHERE quantity < low_stock_threshold)
		FROM items
	`
	err := r.db.QueryRow(ctx, query).Scan(&summary.TotalItems, &summary.TotalStock, &summary.LowStockCount)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (r *itemRepo) queryItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Brand, &item.Type, &item.Quantity, &item.LowStockThreshold, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
