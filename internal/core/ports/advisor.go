package ports

import "context"

// PriceAdvice is the structured answer of the pricing advisor.
type PriceAdvice struct {
	SuggestedPrice float64 `json:"suggested_price"`
	Reasoning      string  `json:"reasoning"`
}

// PriceAdviceRequest is the prompt sent to the pricing advisor.
type PriceAdviceRequest struct {
	RoomLabel            string
	HistoricalData       string
	CurrentBookingTrends string
}

// PriceAdvisor is the remote text-generation endpoint.
type PriceAdvisor interface {
	SuggestPrice(ctx context.Context, req PriceAdviceRequest) (*PriceAdvice, error)
}
