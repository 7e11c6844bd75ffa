package models

import (
	"encoding/json"
	"time"
)

// EntryTime wraps time.Time to accept the timestamp shapes the history
// endpoint emits: full RFC 3339 or a bare date. Null, missing, and
// unparsable values all leave the time zero; a zero timestamp marks the
// entry as skippable, it never fails decoding.
type EntryTime struct {
	time.Time
}

func (t *EntryTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

// HistoryEntry represents a single row of the full deal history returned by
// the games/history call. The upstream list arrives in no particular order.
//
// Entries without a timestamp or without a deal object carry no usable
// observation and are skipped during aggregation.
type HistoryEntry struct {
	Timestamp EntryTime `json:"timestamp"`
	Deal      *Deal     `json:"deal"`
}

// PriceStats is the aggregated result of a stats request: the three summary
// points (each nil until evidence is found) plus the chart series.
//
// Invariant: ChartLabels and ChartPrices always have the same length and are
// index-aligned, in chronological order.
type PriceStats struct {
	HistoricalLow  *LowPoint
	HistoricalHigh *HighPoint
	LastSale       *SalePoint
	ChartLabels    []int64
	ChartPrices    []float64
	Currency       string
}

// LowPoint is the regional historical low, with display strings precomputed.
// Timestamp is epoch milliseconds for chart alignment.
type LowPoint struct {
	Price     string
	Date      string
	Amount    float64
	Timestamp int64
}

// HighPoint is the highest regular price ever observed (strictly above zero).
type HighPoint struct {
	Price  string
	Date   string
	Amount float64
}

// SalePoint is the most recent discount: its date and the cut percentage
// rounded to the nearest integer.
type SalePoint struct {
	Date string
	Cut  int
}
