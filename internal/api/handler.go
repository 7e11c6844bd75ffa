package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dealpulse/internal/domain/dto"
	"github.com/guttosm/dealpulse/internal/service"
)

// Handler provides HTTP handlers for the price-stats endpoint.
//
// Responsibilities:
//   - Enforce the configuration gate (secret key present) and validate
//     incoming query parameters.
//   - Interact with the stats service.
//   - Translate service results into response DTOs.
//   - Return structured JSON responses with appropriate HTTP status codes.
type Handler struct {
	svc           service.StatsService
	keyConfigured bool
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StatsService): Service dependency assembling price stats.
//   - keyConfigured (bool): Whether the upstream API key is present.
//     Requests are refused with a 500 while it is absent; the secret itself
//     never reaches this layer.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StatsService, keyConfigured bool) *Handler {
	return &Handler{svc: svc, keyConfigured: keyConfigured}
}

// GetStats handles GET /api/v1/stats requests.
//
// Query Parameters:
//   - shopID (string, required): Storefront product identifier.
//
// Responses:
//   - 200 OK: StatsResponse on success, or a NO_HISTORY status body when
//     the product is unknown to the price tracker (a designed outcome, not
//     a failure).
//   - 400 Bad Request: Missing shopID parameter.
//   - 500 Internal Server Error: Missing server credential, or an
//     unrecoverable upstream failure ("proxy error: ...").
//
// GetStats godoc
// @Summary      Get price history stats
// @Description  Returns historical low/high, last sale, and a chart-ready price series for a storefront product
// @Tags         stats
// @Produce      json
// @Param        shopID  query     string  true  "Storefront product identifier"  example(990080)
// @Success      200     {object}  dto.StatsResponse   "Success (or NO_HISTORY status body)"
// @Failure      400     {object}  dto.StatusResponse  "Missing shopID"
// @Failure      500     {object}  dto.StatusResponse  "Configuration or proxy error"
// @Router       /api/v1/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	// ─── Configuration gate ───────────────────────────────────
	if !h.keyConfigured {
		c.JSON(http.StatusInternalServerError, dto.NewAPIError("internal server error"))
		return
	}

	// ─── Validate "shopID" param ──────────────────────────────
	shopID := strings.TrimSpace(c.Query("shopID"))
	if shopID == "" {
		c.JSON(http.StatusBadRequest, dto.NewAPIError("missing shopID parameter"))
		return
	}

	// ─── Query service (with request context) ─────────────────
	stats, err := h.svc.GetStats(c.Request.Context(), shopID)
	if errors.Is(err, service.ErrNoHistory) {
		c.JSON(http.StatusOK, dto.NewNoHistory("game not found in price tracker"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewAPIError("proxy error: "+err.Error()))
		return
	}

	// ─── Build and return response DTO ────────────────────────
	resp := dto.StatsResponse{
		ChartData: dto.ChartData{
			Labels:   stats.ChartLabels,
			Prices:   stats.ChartPrices,
			Currency: stats.Currency,
		},
	}
	if stats.HistoricalLow != nil {
		resp.HistoricalLow = &dto.LowDTO{
			Price:     stats.HistoricalLow.Price,
			Date:      stats.HistoricalLow.Date,
			Amount:    stats.HistoricalLow.Amount,
			Timestamp: stats.HistoricalLow.Timestamp,
		}
	}
	if stats.HistoricalHigh != nil {
		resp.HistoricalHigh = &dto.HighDTO{
			Price:  stats.HistoricalHigh.Price,
			Date:   stats.HistoricalHigh.Date,
			Amount: stats.HistoricalHigh.Amount,
		}
	}
	if stats.LastSale != nil {
		resp.LastSale = &dto.SaleDTO{
			Date: stats.LastSale.Date,
			Cut:  stats.LastSale.Cut,
		}
	}

	c.JSON(http.StatusOK, resp)
}
