package service

import (
	"testing"
	"time"

	"github.com/guttosm/dealpulse/internal/domain/models"
	"github.com/guttosm/dealpulse/internal/format"
)

func newStats() *models.PriceStats {
	return &models.PriceStats{
		ChartLabels: []int64{},
		ChartPrices: []float64{},
		Currency:    "USD",
	}
}

func TestAggregateHistory_NoPositiveRegular(t *testing.T) {
	stats := newStats()
	aggregateHistory(stats, []models.HistoryEntry{
		entry("2023-01-01", 5, 0, 0),
		entry("2023-02-01", 5, -10, 0),
	})
	if stats.HistoricalHigh != nil {
		t.Fatalf("expected nil high when no regular > 0, got %+v", stats.HistoricalHigh)
	}
	if len(stats.ChartPrices) != 2 {
		t.Fatalf("entries still chart: got %d points", len(stats.ChartPrices))
	}
}

func TestAggregateHistory_NoSale(t *testing.T) {
	stats := newStats()
	aggregateHistory(stats, []models.HistoryEntry{
		entry("2023-01-01", 50, 50, 0),
	})
	if stats.LastSale != nil {
		t.Fatalf("expected nil lastSale when no cut > 0, got %+v", stats.LastSale)
	}
}

func TestAggregateHistory_FirstMaximizerKeepsDate(t *testing.T) {
	// Equal regular prices: the strict > comparison means the earliest
	// occurrence keeps the high's date.
	stats := newStats()
	aggregateHistory(stats, []models.HistoryEntry{
		entry("2023-06-01", 30, 60, 50),
		entry("2021-01-15", 60, 60, 0),
	})
	if stats.HistoricalHigh == nil || stats.HistoricalHigh.Amount != 60 {
		t.Fatalf("high = %+v, want amount 60", stats.HistoricalHigh)
	}
	if stats.HistoricalHigh.Date != "Jan 2021" {
		t.Fatalf("high date = %q, want the chronologically first maximizer", stats.HistoricalHigh.Date)
	}
}

func TestAggregateHistory_LastSaleWins(t *testing.T) {
	stats := newStats()
	aggregateHistory(stats, []models.HistoryEntry{
		entry("2022-01-01", 10, 40, 75),
		entry("2023-03-05", 20, 40, 50.4),
	})
	if stats.LastSale == nil || stats.LastSale.Cut != 50 {
		t.Fatalf("last sale = %+v, want rounded cut 50 from the latest entry", stats.LastSale)
	}
	if stats.LastSale.Date != "5 Mar 2023" {
		t.Fatalf("last sale date = %q, want specific day/month/year", stats.LastSale.Date)
	}
}

func TestAggregateHistory_SkipsIncompleteEntries(t *testing.T) {
	valid := entry("2023-01-01", 10, 20, 0)
	noDeal := models.HistoryEntry{Timestamp: models.EntryTime{Time: time.Now()}}
	noTimestamp := models.HistoryEntry{Deal: &models.Deal{
		Price:   models.Price{Amount: 999},
		Regular: models.Price{Amount: 999},
	}}

	stats := newStats()
	aggregateHistory(stats, []models.HistoryEntry{noDeal, valid, noTimestamp})

	if len(stats.ChartLabels) != 1 || len(stats.ChartPrices) != 1 {
		t.Fatalf("expected exactly one chart point, got labels=%v prices=%v", stats.ChartLabels, stats.ChartPrices)
	}
	if stats.HistoricalHigh == nil || stats.HistoricalHigh.Amount != 20 {
		t.Fatalf("skipped entries leaked into the high: %+v", stats.HistoricalHigh)
	}
}

func TestAggregateHistory_EmptyInputLeavesStatsUntouched(t *testing.T) {
	stats := newStats()
	aggregateHistory(stats, nil)
	if len(stats.ChartLabels) != 0 || stats.HistoricalHigh != nil || stats.LastSale != nil {
		t.Fatalf("empty history must not populate anything: %+v", stats)
	}
}

func TestAggregateHistory_HighUsesResolvedCurrency(t *testing.T) {
	stats := newStats()
	stats.Currency = "ARS"
	aggregateHistory(stats, []models.HistoryEntry{entry("2023-01-01", 10, 20, 0)})
	if stats.HistoricalHigh == nil {
		t.Fatalf("expected a high")
	}
	if stats.HistoricalHigh.Price == "" || stats.HistoricalHigh.Price == format.Price(20, "USD") {
		t.Fatalf("high price %q not formatted with the resolved currency", stats.HistoricalHigh.Price)
	}
}
