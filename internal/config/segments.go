package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Segmentation thresholds are business constants that change per business
// cycle, so they live in a hot-reloadable config file rather than in code.

type ProductThresholds struct {
	// HighPerformerMinSales is exclusive: total sales must exceed it.
	HighPerformerMinSales int64 `mapstructure:"highPerformerMinSales"`
	// MidRangeMinSales is inclusive: total sales at the boundary stay Mid-Range.
	MidRangeMinSales int64 `mapstructure:"midRangeMinSales"`
}

type CustomerThresholds struct {
	VIPMinLifespanMonths int `mapstructure:"vipMinLifespanMonths"`
	// VIPMinSpend is exclusive: spend must exceed it for VIP.
	VIPMinSpend int64 `mapstructure:"vipMinSpend"`
}

type AgeBand struct {
	Label  string `mapstructure:"label"`
	MinAge int    `mapstructure:"minAge"`
	MaxAge *int   `mapstructure:"maxAge"` // nil = open-ended
}

type SegmentConfig struct {
	Product  ProductThresholds  `mapstructure:"product"`
	Customer CustomerThresholds `mapstructure:"customer"`
	AgeBands []AgeBand          `mapstructure:"ageBands"`
}

func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		Product: ProductThresholds{
			HighPerformerMinSales: 50_000,
			MidRangeMinSales:      10_000,
		},
		Customer: CustomerThresholds{
			VIPMinLifespanMonths: 12,
			VIPMinSpend:          5_000,
		},
		AgeBands: []AgeBand{
			{Label: "Under 20", MinAge: 0, MaxAge: intPtr(19)},
			{Label: "20-29", MinAge: 20, MaxAge: intPtr(29)},
			{Label: "30-39", MinAge: 30, MaxAge: intPtr(39)},
			{Label: "40-49", MinAge: 40, MaxAge: intPtr(49)},
			{Label: "50 and Above", MinAge: 50, MaxAge: nil},
		},
	}
}

func intPtr(v int) *int { return &v }

type SegmentConfigHolder struct {
	current atomic.Value // holds SegmentConfig
}

func NewSegmentConfigHolder() (*SegmentConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("segments")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/salescope/config") // Volume-mounted config
	v.AddConfigPath("/etc/salescope")            // System config
	v.AddConfigPath(".")                         // Current directory (dev mode)

	v.SetEnvPrefix("SALESCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultSegmentConfig()
		v.SetDefault("segments.product", defaults.Product)
		v.SetDefault("segments.customer", defaults.Customer)
		v.SetDefault("segments.ageBands", defaults.AgeBands)
	}

	var cfg SegmentConfig
	if err := v.UnmarshalKey("segments", &cfg); err != nil {
		return nil, err
	}
	if err := validateSegmentConfig(cfg); err != nil {
		return nil, err
	}

	holder := &SegmentConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated SegmentConfig
		if err := v.UnmarshalKey("segments", &updated); err != nil {
			log.Printf("[segment-config] reload failed: %v", err)
			return
		}
		if err := validateSegmentConfig(updated); err != nil {
			log.Printf("[segment-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[segment-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticSegmentConfigHolder wraps a fixed config with no file watching.
func NewStaticSegmentConfigHolder(cfg SegmentConfig) *SegmentConfigHolder {
	holder := &SegmentConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *SegmentConfigHolder) Get() SegmentConfig {
	return h.current.Load().(SegmentConfig)
}

func validateSegmentConfig(cfg SegmentConfig) error {
	if cfg.Product.HighPerformerMinSales <= cfg.Product.MidRangeMinSales {
		return errors.New("segments.product: highPerformerMinSales must exceed midRangeMinSales")
	}
	if cfg.Product.MidRangeMinSales < 0 {
		return errors.New("segments.product: midRangeMinSales cannot be negative")
	}
	if cfg.Customer.VIPMinLifespanMonths < 0 {
		return errors.New("segments.customer: vipMinLifespanMonths cannot be negative")
	}
	if len(cfg.AgeBands) == 0 {
		return errors.New("segments.ageBands cannot be empty")
	}
	return nil
}
