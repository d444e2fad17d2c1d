// Package nutritionix implements the trackapi.nutritionix.com/v2 client.
package nutritionix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/errors"
)

const defaultBaseURL = "https://trackapi.nutritionix.com/v2"

// searchLimit caps how many results Search returns
const searchLimit = 5

// Client calls the Nutritionix API. It implements ports.FoodDataProvider.
type Client struct {
	baseURL    string
	appID      string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a Nutritionix API client
func NewClient(appID, apiKey string, log *zap.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		appID:   appID,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint (tests)
func NewClientWithBaseURL(baseURL, appID, apiKey string, log *zap.Logger) *Client {
	c := NewClient(appID, apiKey, log)
	c.baseURL = baseURL
	return c
}

type instantResponse struct {
	Common  []instantFood `json:"common"`
	Branded []instantFood `json:"branded"`
}

type instantFood struct {
	FoodName    string  `json:"food_name"`
	BrandName   string  `json:"brand_name"`
	ServingUnit string  `json:"serving_unit"`
	ServingQty  float64 `json:"serving_qty"`
	NixItemID   string  `json:"nix_item_id"`
}

type nutrientsResponse struct {
	Foods []nutrientFood `json:"foods"`
}

type nutrientFood struct {
	FoodName           string  `json:"food_name"`
	BrandName          string  `json:"brand_name"`
	ServingQty         float64 `json:"serving_qty"`
	ServingUnit        string  `json:"serving_unit"`
	ServingWeightGrams float64 `json:"serving_weight_grams"`
	Calories           float64 `json:"nf_calories"`
	Protein            float64 `json:"nf_protein"`
	TotalFat           float64 `json:"nf_total_fat"`
	TotalCarbohydrate  float64 `json:"nf_total_carbohydrate"`
}

// Search returns common and branded matches for a free-text query
func (c *Client) Search(ctx context.Context, query string) ([]models.Food, error) {
	if query == "" {
		return nil, nil
	}

	endpoint := "/search/instant?query=" + url.QueryEscape(query)
	var resp instantResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	results := make([]models.Food, 0, searchLimit)
	for _, f := range resp.Common {
		if len(results) == searchLimit {
			break
		}
		results = append(results, models.Food{
			Name:    f.FoodName,
			Serving: serving(f.ServingQty, f.ServingUnit),
		})
	}
	for _, f := range resp.Branded {
		if len(results) == searchLimit {
			break
		}
		results = append(results, models.Food{
			Name:    f.FoodName,
			Brand:   f.BrandName,
			ItemID:  f.NixItemID,
			Serving: serving(f.ServingQty, f.ServingUnit),
		})
	}
	return results, nil
}

// NaturalNutrients resolves a natural-language description into foods
// with full nutrient data
func (c *Client) NaturalNutrients(ctx context.Context, query string) ([]models.Food, error) {
	body := map[string]string{"query": query}
	var resp nutrientsResponse
	if err := c.do(ctx, http.MethodPost, "/natural/nutrients", body, &resp); err != nil {
		return nil, err
	}

	foods := make([]models.Food, 0, len(resp.Foods))
	for _, f := range resp.Foods {
		foods = append(foods, toFood(f))
	}
	return foods, nil
}

// BrandedItem fetches full nutrients for a branded item ID
func (c *Client) BrandedItem(ctx context.Context, itemID string) (*models.Food, error) {
	endpoint := "/search/item?nix_item_id=" + url.QueryEscape(itemID)
	var resp nutrientsResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Foods) == 0 {
		return nil, errors.NewNotFoundError("branded food", itemID)
	}

	food := toFood(resp.Foods[0])
	food.ItemID = itemID
	return &food, nil
}

func toFood(f nutrientFood) models.Food {
	return models.Food{
		Name:     f.FoodName,
		Brand:    f.BrandName,
		Calories: f.Calories,
		Protein:  f.Protein,
		Fat:      f.TotalFat,
		Carbs:    f.TotalCarbohydrate,
		Serving:  serving(f.ServingQty, f.ServingUnit),
		GramsPer: f.ServingWeightGrams,
	}
}

func serving(qty float64, unit string) string {
	if unit == "" {
		return ""
	}
	return fmt.Sprintf("%g %s", qty, unit)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.apiKey)
	req.Header.Set("x-remote-user-id", "0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewExternalError("nutritionix", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("nutritionix request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return errors.NewExternalError("nutritionix",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalError("nutritionix", err)
	}
	return nil
}
