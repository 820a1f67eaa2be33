package service

import (
	"time"

	"github.com/smallbiznis/salescope/internal/config"
	"github.com/smallbiznis/salescope/internal/report/domain"
)

func productSegment(totalSales int64, cfg config.ProductThresholds) string {
	switch {
	case totalSales > cfg.HighPerformerMinSales:
		return domain.ProductSegmentHigh
	case totalSales >= cfg.MidRangeMinSales:
		return domain.ProductSegmentMid
	default:
		return domain.ProductSegmentLow
	}
}

func customerSegment(lifespanMonths int, totalSales int64, cfg config.CustomerThresholds) string {
	switch {
	case lifespanMonths >= cfg.VIPMinLifespanMonths && totalSales > cfg.VIPMinSpend:
		return domain.CustomerSegmentVIP
	case lifespanMonths >= cfg.VIPMinLifespanMonths:
		return domain.CustomerSegmentRegular
	default:
		return domain.CustomerSegmentNew
	}
}

// age counts whole calendar years, matching DATEDIFF(year, birthdate, now).
func age(birthdate *time.Time, now time.Time) (int, bool) {
	if birthdate == nil {
		return 0, false
	}
	return now.Year() - birthdate.Year(), true
}

func ageGroup(years int, known bool, bands []config.AgeBand) string {
	if !known {
		return domain.AgeGroupUnknown
	}
	for _, band := range bands {
		if years < band.MinAge {
			continue
		}
		if band.MaxAge != nil && years > *band.MaxAge {
			continue
		}
		return band.Label
	}
	return domain.AgeGroupUnknown
}
