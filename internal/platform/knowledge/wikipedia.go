package knowledge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
)

// Fallback strings returned when Wikipedia cannot be consulted. The exact
// wording is contractual: clients receive it verbatim.
const (
	wikipediaMissingExtract = "Information not found on Wikipedia"
	wikipediaBadStatus      = "Could not retrieve information from Wikipedia"
	wikipediaUnreachable    = "This is a demo response about educational content."
)

// WikipediaClient answers free-text questions using the Wikipedia REST
// page-summary endpoint.
type WikipediaClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewWikipediaClient creates a Wikipedia-backed answer provider.
// If httpClient is nil, a default client with a 10 second timeout is used.
// If logger is nil, a default logger will be used.
func NewWikipediaClient(httpClient *http.Client, logger *slog.Logger) *WikipediaClient {
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WikipediaClient{
		baseURL: "https://en.wikipedia.org/api/rest_v1/page/summary/",
		client:  httpClient,
		logger:  logger.With(slog.String("component", "wikipedia_client")),
	}
}

// Answer looks up the question as a Wikipedia page title and returns the
// summary extract. It never fails: any transport or decoding problem yields
// one of the fixed fallback strings.
func (c *WikipediaClient) Answer(ctx context.Context, question string) string {
	endpoint := c.baseURL + url.PathEscape(question)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Warn("failed to build Wikipedia request",
			slog.String("error", err.Error()))
		return wikipediaUnreachable
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Wikipedia request failed",
			slog.String("error", err.Error()))
		return wikipediaUnreachable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("Wikipedia returned non-200 status",
			slog.Int("status", resp.StatusCode))
		return wikipediaBadStatus
	}

	var summary struct {
		Extract string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		c.logger.Warn("failed to decode Wikipedia response",
			slog.String("error", err.Error()))
		return wikipediaUnreachable
	}

	if summary.Extract == "" {
		return wikipediaMissingExtract
	}
	return summary.Extract
}
