package service

import (
	"math"
	"sort"
	"time"

	"github.com/guttosm/dealpulse/internal/domain/models"
	"github.com/guttosm/dealpulse/internal/format"
)

// aggregateHistory folds the deal history into stats in a single pass.
//
// Entries are stable-sorted by timestamp ascending first, then scanned left
// to right:
//   - historical high: running maximum of the regular price under strict >,
//     so the chronologically first maximizer keeps its date on ties;
//   - last sale: every entry with cut > 0 overwrites, so the last one wins;
//   - chart series: one (label, price) point per entry that has both a
//     timestamp and a deal; labels are epoch milliseconds.
//
// Entries lacking a timestamp or a deal are skipped silently. stats.Currency
// must already be resolved; it labels the formatted high price.
func aggregateHistory(stats *models.PriceStats, history []models.HistoryEntry) {
	if len(history) == 0 {
		return
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.Before(history[j].Timestamp.Time)
	})

	var (
		maxRegular   float64
		maxRegularAt time.Time
		lastSaleAt   time.Time
		lastSaleCut  float64
		saleSeen     bool
	)

	for _, entry := range history {
		if entry.Timestamp.IsZero() || entry.Deal == nil {
			continue
		}

		stats.ChartLabels = append(stats.ChartLabels, entry.Timestamp.UnixMilli())
		stats.ChartPrices = append(stats.ChartPrices, entry.Deal.Price.Amount)

		if entry.Deal.Regular.Amount > maxRegular {
			maxRegular = entry.Deal.Regular.Amount
			maxRegularAt = entry.Timestamp.Time
		}
		if entry.Deal.Cut > 0 {
			lastSaleAt = entry.Timestamp.Time
			lastSaleCut = entry.Deal.Cut
			saleSeen = true
		}
	}

	if maxRegular > 0 {
		stats.HistoricalHigh = &models.HighPoint{
			Price:  format.Price(maxRegular, stats.Currency),
			Date:   format.Date(maxRegularAt, false),
			Amount: maxRegular,
		}
	}
	if saleSeen {
		stats.LastSale = &models.SalePoint{
			Date: format.Date(lastSaleAt, true),
			Cut:  int(math.Round(lastSaleCut)),
		}
	}
}
