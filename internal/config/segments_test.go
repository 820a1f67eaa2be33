package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSegmentConfigValid(t *testing.T) {
	cfg := DefaultSegmentConfig()
	require.NoError(t, validateSegmentConfig(cfg))

	assert.Equal(t, int64(50_000), cfg.Product.HighPerformerMinSales)
	assert.Equal(t, int64(10_000), cfg.Product.MidRangeMinSales)
	assert.Equal(t, 12, cfg.Customer.VIPMinLifespanMonths)
	assert.Equal(t, int64(5_000), cfg.Customer.VIPMinSpend)
	require.Len(t, cfg.AgeBands, 5)
	assert.Nil(t, cfg.AgeBands[4].MaxAge, "last band is open-ended")
}

func TestValidateSegmentConfig(t *testing.T) {
	cfg := DefaultSegmentConfig()
	cfg.Product.HighPerformerMinSales = cfg.Product.MidRangeMinSales
	assert.Error(t, validateSegmentConfig(cfg))

	cfg = DefaultSegmentConfig()
	cfg.AgeBands = nil
	assert.Error(t, validateSegmentConfig(cfg))

	cfg = DefaultSegmentConfig()
	cfg.Customer.VIPMinLifespanMonths = -1
	assert.Error(t, validateSegmentConfig(cfg))
}

func TestStaticSegmentConfigHolder(t *testing.T) {
	cfg := DefaultSegmentConfig()
	cfg.Product.HighPerformerMinSales = 75_000

	holder := NewStaticSegmentConfigHolder(cfg)
	assert.Equal(t, int64(75_000), holder.Get().Product.HighPerformerMinSales)
}
