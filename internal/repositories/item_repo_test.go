package repositories

import (
	"context"
	"testing"
	"time"

	"stockflow/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ItemRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    ItemRepository
	itemID  uuid.UUID
	context context.Context
}

func (suite *ItemRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewItemRepo(mock)
	suite.itemID = uuid.New()
	suite.context = context.Background()
}

func (suite *ItemRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestItemRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepoTestSuite))
}

func (suite *ItemRepoTestSuite) itemRows(id uuid.UUID, quantity, threshold int) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "name", "brand", "type", "quantity", "low_stock_threshold", "created_at", "updated_at"}).
		AddRow(id, "T-Shirt", "Fashion Brand", "Clothing", quantity, threshold, now, now)
}

func (suite *ItemRepoTestSuite) TestAddStock_InsertsNewItem() {
	item := &models.Item{
		ID:                suite.itemID,
		Name:              "T-Shirt",
		Brand:             "Fashion Brand",
		Type:              "Clothing",
		Quantity:          50,
		LowStockThreshold: 10,
	}

	suite.mock.ExpectQuery(`INSERT INTO items \(id, name, brand, type, quantity, low_stock_threshold, created_at, updated_at\)`).
		WithArgs(item.ID, item.Name, item.Brand, item.Type, item.Quantity, item.LowStockThreshold).
		WillReturnRows(suite.itemRows(suite.itemID, 50, 10))

	err := suite.repo.AddStock(suite.context, item)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 50, item.Quantity)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ItemRepoTestSuite) TestAddStock_MergeKeepsExistingRow() {
	existingID := uuid.New()
	item := &models.Item{
		ID:                suite.itemID, // fresh candidate id, discarded on conflict
		Name:              "T-Shirt",
		Brand:             "Fashion Brand",
		Type:              "Clothing",
		Quantity:          5,
		LowStockThreshold: 99,
	}

	// ON CONFLICT returns the existing row: original id, summed quantity,
	// stored threshold.
	suite.mock.ExpectQuery(`ON CONFLICT \(name, brand, type\) DO UPDATE SET quantity = items\.quantity \+ EXCLUDED\.quantity`).
		WithArgs(item.ID, item.Name, item.Brand, item.Type, item.Quantity, item.LowStockThreshold).
		WillReturnRows(suite.itemRows(existingID, 55, 10))

	err := suite.repo.AddStock(suite.context, item)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existingID, item.ID)
	assert.Equal(suite.T(), 55, item.Quantity)
	assert.Equal(suite.T(), 10, item.LowStockThreshold)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ItemRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, name, brand, type, quantity, low_stock_threshold, created_at, updated_at`).
		WithArgs(suite.itemID).
		WillReturnError(pgx.ErrNoRows)

	item, err := suite.repo.GetByID(suite.context, suite.itemID)
	assert.Nil(suite.T(), item)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *ItemRepoTestSuite) TestDecrementStock_Success() {
	suite.mock.ExpectQuery(`UPDATE items\s+SET quantity = quantity - \$2, updated_at = NOW\(\)\s+WHERE id = \$1 AND quantity >= \$2`).
		WithArgs(suite.itemID, 3).
		WillReturnRows(suite.itemRows(suite.itemID, 49, 10))

	item, err := suite.repo.DecrementStock(suite.context, suite.itemID, 3)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 49, item.Quantity)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ItemRepoTestSuite) TestDecrementStock_GuardRejectsOversell() {
	// quantity >= $2 filters out the row, so UPDATE ... RETURNING yields
	// no rows at all.
	suite.mock.ExpectQuery(`WHERE id = \$1 AND quantity >= \$2`).
		WithArgs(suite.itemID, 1000).
		WillReturnError(pgx.ErrNoRows)

	item, err := suite.repo.DecrementStock(suite.context, suite.itemID, 1000)
	assert.Nil(suite.T(), item)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *ItemRepoTestSuite) TestListLowStock() {
	suite.mock.ExpectQuery(`WHERE quantity < low_stock_threshold`).
		WillReturnRows(suite.itemRows(suite.itemID, 2, 10))

	items, err := suite.repo.ListLowStock(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 2, items[0].Quantity)
}

func (suite *ItemRepoTestSuite) TestStockSummary() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(quantity\), 0\), COUNT\(\*\) FILTER \(WHERE quantity < low_stock_threshold\)`).
		WillReturnRows(pgxmock.NewRows([]string{"count", "sum", "low"}).AddRow(12, 340, 2))

	summary, err := suite.repo.StockSummary(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, summary.TotalItems)
	assert.Equal(suite.T(), 340, summary.TotalStock)
	assert.Equal(suite.T(), 2, summary.LowStockCount)
}
