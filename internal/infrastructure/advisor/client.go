// Package advisor talks to the remote text-generation endpoint that
// suggests room prices.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const suggestPath = "/suggest-price"

// ErrEmptyAdvice is returned when the endpoint answers without a price.
var ErrEmptyAdvice = errors.New("advisor returned no suggestion")

type suggestRequest struct {
	RoomID               string `json:"roomId"`
	HistoricalData       string `json:"historicalData"`
	CurrentBookingTrends string `json:"currentBookingTrends"`
}

type suggestResponse struct {
	SuggestedPrice *float64 `json:"suggestedPrice"`
	Reasoning      string   `json:"reasoning"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client implements ports.PriceAdvisor. Calls are never retried.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		c.SetAuthToken(apiKey)
	}
	return &Client{http: c, log: log}
}

// SuggestPrice sends the room label with the two prompt texts and returns
// the structured answer.
func (c *Client) SuggestPrice(ctx context.Context, req ports.PriceAdviceRequest) (*ports.PriceAdvice, error) {
	var (
		result  suggestResponse
		failure errorResponse
	)
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(suggestRequest{
			RoomID:               req.RoomLabel,
			HistoricalData:       req.HistoricalData,
			CurrentBookingTrends: req.CurrentBookingTrends,
		}).
		SetResult(&result).
		SetError(&failure).
		Post(suggestPath)
	metrics.AdvisorRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AdvisorRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("advisor request: %w", err)
	}
	if resp.IsError() {
		metrics.AdvisorRequestsTotal.WithLabelValues("error").Inc()
		c.log.Error().Int("status_code", resp.StatusCode()).Str("error", failure.Error).Msg("advisor returned an error")
		return nil, fmt.Errorf("advisor status %d: %s", resp.StatusCode(), failure.Error)
	}
	if result.SuggestedPrice == nil {
		metrics.AdvisorRequestsTotal.WithLabelValues("error").Inc()
		return nil, ErrEmptyAdvice
	}

	metrics.AdvisorRequestsTotal.WithLabelValues("ok").Inc()
	return &ports.PriceAdvice{SuggestedPrice: *result.SuggestedPrice, Reasoning: result.Reasoning}, nil
}
