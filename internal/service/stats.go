package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/dealpulse/internal/domain/models"
	"github.com/guttosm/dealpulse/internal/format"
	"github.com/guttosm/dealpulse/internal/itad"
	"github.com/guttosm/dealpulse/internal/logger"
)

// ErrNoHistory marks the designed terminal outcome where the storefront
// product is unknown to the price tracker. Handlers map it to a 200
// NO_HISTORY response, never to a failure.
var ErrNoHistory = errors.New("game not found in price tracker")

// fallbackCurrency labels chart data when the regional low (the
// authoritative currency source) could not be fetched.
const fallbackCurrency = "USD"

// StatsService assembles the price-history summary for one storefront
// product.
type StatsService interface {
	GetStats(ctx context.Context, shopID string) (*models.PriceStats, error)
}

type statsService struct {
	client itad.API
	log    zerolog.Logger
}

// NewStatsService constructs a StatsService backed by the given upstream
// client.
func NewStatsService(client itad.API) StatsService {
	return &statsService{client: client, log: logger.With("stats")}
}

// GetStats resolves the canonical game id, fetches the regional low and the
// full deal history, and aggregates them into a PriceStats.
//
// The dependency graph is GID -> {low, history}: the two fetches only need
// the gid, so they run concurrently. Both are best-effort: a failed branch
// is logged and leaves its part of the result empty, it never fails the
// request. The display currency comes from the low branch and is resolved
// after both branches finish, before any aggregation output is formatted.
//
// Errors:
//   - ErrNoHistory when the lookup finds no mapping for shopID.
//   - A wrapped upstream error when the lookup call itself fails.
func (s *statsService) GetStats(ctx context.Context, shopID string) (*models.PriceStats, error) {
	gid, found, err := s.client.LookupGameID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("gid lookup: %w", err)
	}
	if !found {
		s.log.Warn().Str("shop_id", shopID).Msg("no gid mapping for product")
		return nil, ErrNoHistory
	}

	var (
		low     *models.RegionalLow
		history []models.HistoryEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, lowErr := s.client.HistoryLow(gctx, gid)
		if lowErr != nil {
			s.log.Warn().Err(lowErr).Str("gid", gid).Msg("regional low fetch failed")
			return nil
		}
		low = l
		return nil
	})
	g.Go(func() error {
		h, histErr := s.client.History(gctx, gid)
		if histErr != nil {
			s.log.Error().Err(histErr).Str("gid", gid).Msg("full history fetch failed")
			return nil
		}
		history = h
		return nil
	})
	// Branches swallow their own failures, so Wait never returns an error.
	_ = g.Wait()

	stats := &models.PriceStats{
		ChartLabels: []int64{},
		ChartPrices: []float64{},
		Currency:    fallbackCurrency,
	}

	if low != nil {
		if low.Currency != "" {
			stats.Currency = low.Currency
		}
		stats.HistoricalLow = &models.LowPoint{
			Price:     format.Price(low.Amount, stats.Currency),
			Date:      format.DateUnix(low.Timestamp, false),
			Amount:    low.Amount,
			Timestamp: low.Timestamp * 1000,
		}
	}

	aggregateHistory(stats, history)
	return stats, nil
}
