package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/dealpulse/internal/domain/models"
	"github.com/guttosm/dealpulse/internal/itad"
)

type fakeAPI struct {
	gid       string
	found     bool
	lookupErr error

	low    *models.RegionalLow
	lowErr error

	history []models.HistoryEntry
	histErr error
}

func (f *fakeAPI) LookupGameID(_ context.Context, _ string) (string, bool, error) {
	return f.gid, f.found, f.lookupErr
}

func (f *fakeAPI) HistoryLow(_ context.Context, _ string) (*models.RegionalLow, error) {
	return f.low, f.lowErr
}

func (f *fakeAPI) History(_ context.Context, _ string) ([]models.HistoryEntry, error) {
	return f.history, f.histErr
}

var _ itad.API = (*fakeAPI)(nil)

func entry(day string, price, regular, cut float64) models.HistoryEntry {
	ts, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return models.HistoryEntry{
		Timestamp: models.EntryTime{Time: ts},
		Deal: &models.Deal{
			Price:   models.Price{Amount: price, Currency: "USD"},
			Regular: models.Price{Amount: regular, Currency: "USD"},
			Cut:     cut,
		},
	}
}

func TestGetStats_UnsortedHistoryScenario(t *testing.T) {
	// Two entries arriving newest-first: chart must come out chronological,
	// the high must be the larger regular, the last sale the later cut.
	api := &fakeAPI{
		gid: "g1", found: true,
		history: []models.HistoryEntry{
			entry("2023-01-01", 10, 50, 80),
			entry("2022-06-01", 40, 40, 0),
		},
	}

	stats, err := NewStatsService(api).GetStats(context.Background(), "990080")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats.ChartPrices) != 2 || stats.ChartPrices[0] != 40 || stats.ChartPrices[1] != 10 {
		t.Fatalf("chart prices = %v, want [40 10]", stats.ChartPrices)
	}
	if len(stats.ChartLabels) != len(stats.ChartPrices) {
		t.Fatalf("labels/prices length mismatch: %d vs %d", len(stats.ChartLabels), len(stats.ChartPrices))
	}
	if stats.ChartLabels[0] >= stats.ChartLabels[1] {
		t.Fatalf("labels not chronological: %v", stats.ChartLabels)
	}
	if stats.HistoricalHigh == nil || stats.HistoricalHigh.Amount != 50 {
		t.Fatalf("historical high = %+v, want amount 50", stats.HistoricalHigh)
	}
	if stats.LastSale == nil || stats.LastSale.Cut != 80 {
		t.Fatalf("last sale = %+v, want cut 80", stats.LastSale)
	}
}

func TestGetStats_OrderIndependence(t *testing.T) {
	entries := []models.HistoryEntry{
		entry("2021-03-01", 20, 60, 0),
		entry("2022-07-15", 15, 60, 75),
		entry("2020-01-02", 30, 30, 0),
	}
	permutations := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}

	var first *models.PriceStats
	for _, perm := range permutations {
		shuffled := make([]models.HistoryEntry, len(entries))
		for i, idx := range perm {
			shuffled[i] = entries[idx]
		}
		api := &fakeAPI{gid: "g1", found: true, history: shuffled}
		stats, err := NewStatsService(api).GetStats(context.Background(), "x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == nil {
			first = stats
			continue
		}
		if len(stats.ChartPrices) != len(first.ChartPrices) {
			t.Fatalf("series length differs across input orders")
		}
		for i := range stats.ChartPrices {
			if stats.ChartPrices[i] != first.ChartPrices[i] || stats.ChartLabels[i] != first.ChartLabels[i] {
				t.Fatalf("series differ across input orders: %v vs %v", stats.ChartPrices, first.ChartPrices)
			}
		}
		if stats.HistoricalHigh.Amount != first.HistoricalHigh.Amount || stats.LastSale.Cut != first.LastSale.Cut {
			t.Fatalf("aggregates differ across input orders")
		}
	}
}

func TestGetStats_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		api    *fakeAPI
		assert func(t *testing.T, stats *models.PriceStats, err error)
	}{
		{
			name: "not found is ErrNoHistory",
			api:  &fakeAPI{found: false},
			assert: func(t *testing.T, stats *models.PriceStats, err error) {
				if !errors.Is(err, ErrNoHistory) {
					t.Fatalf("expected ErrNoHistory, got %v", err)
				}
				if stats != nil {
					t.Fatalf("expected nil stats, got %+v", stats)
				}
			},
		},
		{
			name: "lookup failure propagates",
			api:  &fakeAPI{lookupErr: &itad.UpstreamError{Call: "lookup", Status: 502}},
			assert: func(t *testing.T, _ *models.PriceStats, err error) {
				var upErr *itad.UpstreamError
				if !errors.As(err, &upErr) || upErr.Status != 502 {
					t.Fatalf("expected wrapped UpstreamError 502, got %v", err)
				}
			},
		},
		{
			name: "low failure falls back to USD and keeps history",
			api: &fakeAPI{
				gid: "g1", found: true,
				lowErr:  errors.New("boom"),
				history: []models.HistoryEntry{entry("2023-05-01", 12, 24, 50)},
			},
			assert: func(t *testing.T, stats *models.PriceStats, err error) {
				if err != nil {
					t.Fatalf("low failure must not fail the request: %v", err)
				}
				if stats.HistoricalLow != nil {
					t.Fatalf("expected nil low, got %+v", stats.HistoricalLow)
				}
				if stats.Currency != "USD" {
					t.Fatalf("currency = %q, want fallback USD", stats.Currency)
				}
				if len(stats.ChartPrices) != 1 || stats.LastSale == nil {
					t.Fatalf("history aggregation should survive low failure: %+v", stats)
				}
			},
		},
		{
			name: "history failure keeps low",
			api: &fakeAPI{
				gid: "g1", found: true,
				low:     &models.RegionalLow{Amount: 3.5, Currency: "ARS", Timestamp: 1700000000},
				histErr: errors.New("boom"),
			},
			assert: func(t *testing.T, stats *models.PriceStats, err error) {
				if err != nil {
					t.Fatalf("history failure must not fail the request: %v", err)
				}
				if stats.HistoricalLow == nil || stats.HistoricalLow.Amount != 3.5 {
					t.Fatalf("expected low to survive, got %+v", stats.HistoricalLow)
				}
				if stats.Currency != "ARS" {
					t.Fatalf("currency = %q, want ARS from the low", stats.Currency)
				}
				if len(stats.ChartLabels) != 0 || len(stats.ChartPrices) != 0 {
					t.Fatalf("expected empty chart, got %+v", stats)
				}
				if stats.HistoricalHigh != nil || stats.LastSale != nil {
					t.Fatalf("expected nil high/lastSale, got %+v", stats)
				}
			},
		},
		{
			name: "low currency labels the chart",
			api: &fakeAPI{
				gid: "g1", found: true,
				low:     &models.RegionalLow{Amount: 100, Currency: "ARS", Timestamp: 1600000000},
				history: []models.HistoryEntry{entry("2022-02-02", 150, 400, 60)},
			},
			assert: func(t *testing.T, stats *models.PriceStats, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if stats.Currency != "ARS" {
					t.Fatalf("currency = %q, want ARS", stats.Currency)
				}
				if stats.HistoricalLow.Timestamp != 1600000000*1000 {
					t.Fatalf("low timestamp = %d, want epoch millis", stats.HistoricalLow.Timestamp)
				}
			},
		},
		{
			name: "empty history yields empty but non-nil series",
			api:  &fakeAPI{gid: "g1", found: true},
			assert: func(t *testing.T, stats *models.PriceStats, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if stats.ChartLabels == nil || stats.ChartPrices == nil {
					t.Fatalf("series must be empty slices, not nil")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := NewStatsService(tc.api).GetStats(context.Background(), "990080")
			tc.assert(t, stats, err)
		})
	}
}
