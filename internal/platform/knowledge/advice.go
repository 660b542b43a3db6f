package knowledge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Fallback tips returned when Advice Slip cannot be consulted.
const (
	adviceBadStatus   = "Stay positive and take things one day at a time."
	adviceUnreachable = "Remember to practice self-care and mindfulness."
)

// AdviceClient fetches a random wellbeing tip from the Advice Slip API.
type AdviceClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewAdviceClient creates an Advice Slip-backed tip provider.
// If httpClient is nil, a default client with a 10 second timeout is used.
// If logger is nil, a default logger will be used.
func NewAdviceClient(httpClient *http.Client, logger *slog.Logger) *AdviceClient {
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AdviceClient{
		baseURL: "https://api.adviceslip.com/advice",
		client:  httpClient,
		logger:  logger.With(slog.String("component", "advice_client")),
	}
}

// RandomTip returns a single piece of advice. It never fails: any transport
// or decoding problem yields a fixed fallback tip.
func (c *AdviceClient) RandomTip(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		c.logger.Warn("failed to build advice request",
			slog.String("error", err.Error()))
		return adviceUnreachable
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("advice request failed",
			slog.String("error", err.Error()))
		return adviceUnreachable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("advice provider returned non-200 status",
			slog.Int("status", resp.StatusCode))
		return adviceBadStatus
	}

	var result struct {
		Slip struct {
			Advice string `json:"advice"`
		} `json:"slip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn("failed to decode advice response",
			slog.String("error", err.Error()))
		return adviceUnreachable
	}

	if result.Slip.Advice == "" {
		return adviceBadStatus
	}
	return result.Slip.Advice
}
