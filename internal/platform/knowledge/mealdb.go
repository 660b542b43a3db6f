package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// MealDBClient suggests recipes using TheMealDB ingredient filter endpoint.
type MealDBClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewMealDBClient creates a TheMealDB-backed recipe suggestion provider.
// If httpClient is nil, a default client with a 10 second timeout is used.
// If logger is nil, a default logger will be used.
func NewMealDBClient(httpClient *http.Client, logger *slog.Logger) *MealDBClient {
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MealDBClient{
		baseURL: "https://www.themealdb.com/api/json/v1/1/filter.php",
		client:  httpClient,
		logger:  logger.With(slog.String("component", "mealdb_client")),
	}
}

// Suggestion returns a recipe suggestion for the given ingredient. It never
// fails: transport problems yield a generic suggestion and an empty result
// set yields a "no recipes found" message, both mentioning the ingredient.
func (c *MealDBClient) Suggestion(ctx context.Context, ingredient string) string {
	endpoint := c.baseURL + "?i=" + url.QueryEscape(ingredient)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Warn("failed to build MealDB request",
			slog.String("error", err.Error()))
		return fmt.Sprintf("You can make various dishes with %s", ingredient)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("MealDB request failed",
			slog.String("error", err.Error()))
		return fmt.Sprintf("You can make various dishes with %s", ingredient)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("MealDB returned non-200 status",
			slog.Int("status", resp.StatusCode))
		return fmt.Sprintf("No recipes found with %s", ingredient)
	}

	var result struct {
		Meals []struct {
			StrMeal     string `json:"strMeal"`
			StrCategory string `json:"strCategory"`
		} `json:"meals"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn("failed to decode MealDB response",
			slog.String("error", err.Error()))
		return fmt.Sprintf("You can make various dishes with %s", ingredient)
	}

	if len(result.Meals) == 0 {
		return fmt.Sprintf("No recipes found with %s", ingredient)
	}

	meal := result.Meals[0]
	if meal.StrCategory == "" {
		// The filter endpoint omits categories for some meals
		return fmt.Sprintf("Try making: %s", meal.StrMeal)
	}
	return fmt.Sprintf("Try making: %s (%s)", meal.StrMeal, meal.StrCategory)
}
