package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	obsmetrics "github.com/smallbiznis/salescope/internal/observability/metrics"
	"github.com/smallbiznis/salescope/internal/warehouse/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.SalesLine{}, &domain.Product{}, &domain.Customer{}))
	return db
}

func newTestRepo(db *gorm.DB) domain.Repository {
	return &repo{
		db:      db,
		log:     zap.NewNop(),
		metrics: obsmetrics.NewNop(),
	}
}

func TestLoadSnapshot(t *testing.T) {
	db := setupDB(t)

	orderDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&domain.Product{
		ProductKey:  1,
		ProductName: "Road Bike",
		Category:    "Bikes",
	}).Error)
	require.NoError(t, db.Create(&domain.Customer{
		CustomerKey: 10,
		FirstName:   "Jon",
		LastName:    "Yang",
	}).Error)
	require.NoError(t, db.Create(&domain.SalesLine{
		OrderNumber: "SO1",
		ProductKey:  1,
		CustomerKey: 10,
		OrderDate:   &orderDate,
		SalesAmount: 300,
		Quantity:    3,
		Price:       100,
	}).Error)

	snap, err := newTestRepo(db).LoadSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Lines, 1)
	require.Len(t, snap.Products, 1)
	require.Len(t, snap.Customers, 1)

	assert.Equal(t, "SO1", snap.Lines[0].OrderNumber)
	require.NotNil(t, snap.ProductByKey(1))
	assert.Equal(t, "Road Bike", snap.ProductByKey(1).ProductName)
	require.NotNil(t, snap.CustomerByKey(10))
	assert.Nil(t, snap.ProductByKey(999))
}

func TestLoadSnapshotEmptyWarehouse(t *testing.T) {
	db := setupDB(t)

	snap, err := newTestRepo(db).LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Customers)
}

func TestLoadSnapshotWrapsFailures(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Migrator().DropTable(&domain.SalesLine{}))

	_, err := newTestRepo(db).LoadSnapshot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSnapshotLoad)
	assert.Contains(t, err.Error(), "fact_sales")
}
