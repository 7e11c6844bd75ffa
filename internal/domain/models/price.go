package models

// Price is a money amount in a specific currency, exactly as the upstream
// API reports it.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Deal is one observed offer inside a history entry: the discounted price,
// the regular (non-discounted) price, and the discount percentage.
type Deal struct {
	Price   Price   `json:"price"`
	Regular Price   `json:"regular"`
	Cut     float64 `json:"cut"`
}

// RegionalLow is the lowest price ever observed for a game in the target
// region. Timestamp is epoch seconds, as delivered by the historylow call.
type RegionalLow struct {
	Amount    float64
	Currency  string
	Timestamp int64
}
