package dto

// Status codes used by terminal (non-data) responses. These are contract
// values consumed by the browser extension; do not rename.
const (
	StatusAPIError  = "API_ERROR"
	StatusNoHistory = "NO_HISTORY"
)

// StatusResponse is the JSON body for every terminal outcome that does not
// carry price data: configuration errors, validation errors, proxy failures,
// and the designed "product unknown to the price tracker" outcome.
type StatusResponse struct {
	Status  string `json:"status" example:"API_ERROR"`
	Message string `json:"message" example:"missing shopID parameter"`
}

// NewAPIError builds an API_ERROR status body with the given message.
//
// The message must stay short and generic: no stack traces, no raw upstream
// bodies, no credentials.
func NewAPIError(message string) StatusResponse {
	return StatusResponse{Status: StatusAPIError, Message: message}
}

// NewNoHistory builds a NO_HISTORY status body. This is a designed terminal
// outcome (HTTP 200), not a failure: the product simply is not known to the
// price-tracking service.
func NewNoHistory(message string) StatusResponse {
	return StatusResponse{Status: StatusNoHistory, Message: message}
}
