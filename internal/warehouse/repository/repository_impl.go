package repository

import (
	"context"
	"fmt"

	obsmetrics "github.com/smallbiznis/salescope/internal/observability/metrics"
	"github.com/smallbiznis/salescope/internal/warehouse/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Metrics *obsmetrics.Metrics
}

type repo struct {
	db      *gorm.DB
	log     *zap.Logger
	metrics *obsmetrics.Metrics
}

func Provide(p Params) domain.Repository {
	return &repo{
		db:      p.DB,
		log:     p.Log.Named("warehouse.repository"),
		metrics: p.Metrics,
	}
}

func (r *repo) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var lines []domain.SalesLine
	if err := r.db.WithContext(ctx).Find(&lines).Error; err != nil {
		return nil, loadErr("fact_sales", err)
	}

	var products []domain.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, loadErr("dim_products", err)
	}

	var customers []domain.Customer
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, loadErr("dim_customers", err)
	}

	r.metrics.SnapshotLoaded(ctx)
	r.log.Debug("warehouse snapshot loaded",
		zap.Int("sales_lines", len(lines)),
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
	)

	return domain.NewSnapshot(lines, products, customers), nil
}

func loadErr(table string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrSnapshotLoad, table, err)
}
