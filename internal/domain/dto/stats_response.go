package dto

// StatsResponse represents the JSON structure returned by the
// GET /api/v1/stats endpoint on a normal completion.
//
// The three summary fields are nullable: each stays null until the upstream
// history provided evidence for it. ChartData is always present, with labels
// and prices index-aligned and in chronological order.
type StatsResponse struct {
	HistoricalLow  *LowDTO   `json:"historicalLow"`
	HistoricalHigh *HighDTO  `json:"historicalHigh"`
	LastSale       *SaleDTO  `json:"lastSale"`
	ChartData      ChartData `json:"chartData"`
}

// LowDTO is the regional historical low. Price and Date are formatted
// display strings; Amount and Timestamp (epoch milliseconds) are raw values
// for charting.
type LowDTO struct {
	Price     string  `json:"price" example:"$4.99"`
	Date      string  `json:"date" example:"Jan 2024"`
	Amount    float64 `json:"amount" example:"4.99"`
	Timestamp int64   `json:"timestamp" example:"1704067200000"`
}

// HighDTO is the highest regular price ever observed.
type HighDTO struct {
	Price  string  `json:"price" example:"$59.99"`
	Date   string  `json:"date" example:"Mar 2020"`
	Amount float64 `json:"amount" example:"59.99"`
}

// SaleDTO is the most recent discount.
type SaleDTO struct {
	Date string `json:"date" example:"2 Jan 2024"` // Day/month/year of the sale
	Cut  int    `json:"cut" example:"80"`          // Discount percentage, rounded
}

// ChartData carries the two parallel series used to render the price graph.
// Labels are epoch milliseconds. Both slices are never null in JSON, only
// possibly empty.
type ChartData struct {
	Labels   []int64   `json:"labels"`
	Prices   []float64 `json:"prices"`
	Currency string    `json:"currency" example:"USD"`
}
