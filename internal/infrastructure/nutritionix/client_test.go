package nutritionix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/logger"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/instant", r.URL.Path)
		assert.Equal(t, "chicken breast", r.URL.Query().Get("query"))
		assert.Equal(t, "test-id", r.Header.Get("x-app-id"))
		assert.Equal(t, "test-key", r.Header.Get("x-app-key"))
		assert.Equal(t, "0", r.Header.Get("x-remote-user-id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"common": [
				{"food_name": "chicken breast", "serving_qty": 1, "serving_unit": "breast"},
				{"food_name": "grilled chicken breast", "serving_qty": 100, "serving_unit": "g"}
			],
			"branded": [
				{"food_name": "Chicken Breast Strips", "brand_name": "Tyson", "nix_item_id": "abc123", "serving_qty": 3, "serving_unit": "oz"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "test-id", "test-key", logger.NewNop())
	foods, err := client.Search(context.Background(), "chicken breast")
	require.NoError(t, err)
	require.Len(t, foods, 3)

	assert.Equal(t, "chicken breast", foods[0].Name)
	assert.Equal(t, "1 breast", foods[0].Serving)
	assert.Empty(t, foods[0].ItemID)

	assert.Equal(t, "Chicken Breast Strips", foods[2].Name)
	assert.Equal(t, "Tyson", foods[2].Brand)
	assert.Equal(t, "abc123", foods[2].ItemID)
}

func TestSearchEmptyQuery(t *testing.T) {
	client := NewClient("id", "key", logger.NewNop())
	foods, err := client.Search(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, foods)
}

func TestSearchLimitsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"common": [
				{"food_name": "a"}, {"food_name": "b"}, {"food_name": "c"},
				{"food_name": "d"}, {"food_name": "e"}, {"food_name": "f"}
			],
			"branded": [{"food_name": "g", "nix_item_id": "1"}]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "id", "key", logger.NewNop())
	foods, err := client.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Len(t, foods, 5)
}

func TestNaturalNutrients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/natural/nutrients", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Write([]byte(`{
			"foods": [
				{
					"food_name": "rice",
					"serving_qty": 1,
					"serving_unit": "cup",
					"serving_weight_grams": 158,
					"nf_calories": 205.4,
					"nf_protein": 4.25,
					"nf_total_fat": 0.44,
					"nf_total_carbohydrate": 44.51
				},
				{
					"food_name": "egg",
					"serving_qty": 2,
					"serving_unit": "large",
					"serving_weight_grams": 100,
					"nf_calories": 143,
					"nf_protein": 12.6,
					"nf_total_fat": 9.5,
					"nf_total_carbohydrate": 0.7
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "id", "key", logger.NewNop())
	foods, err := client.NaturalNutrients(context.Background(), "1 cup rice and 2 eggs")
	require.NoError(t, err)
	require.Len(t, foods, 2)

	assert.Equal(t, "rice", foods[0].Name)
	assert.InDelta(t, 205.4, foods[0].Calories, 0.001)
	assert.InDelta(t, 44.51, foods[0].Carbs, 0.001)
	assert.Equal(t, "1 cup", foods[0].Serving)
	assert.InDelta(t, 158, foods[0].GramsPer, 0.001)

	assert.Equal(t, "egg", foods[1].Name)
	assert.Equal(t, "2 large", foods[1].Serving)
}

func TestBrandedItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/item", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("nix_item_id"))

		w.Write([]byte(`{
			"foods": [
				{
					"food_name": "Protein Bar",
					"brand_name": "Quest",
					"serving_qty": 1,
					"serving_unit": "bar",
					"serving_weight_grams": 60,
					"nf_calories": 190,
					"nf_protein": 21,
					"nf_total_fat": 8,
					"nf_total_carbohydrate": 21
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "id", "key", logger.NewNop())
	food, err := client.BrandedItem(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "Protein Bar", food.Name)
	assert.Equal(t, "Quest", food.Brand)
	assert.Equal(t, "abc123", food.ItemID)
	assert.InDelta(t, 190, food.Calories, 0.001)
}

func TestBrandedItemNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "id", "key", logger.NewNop())
	_, err := client.BrandedItem(context.Background(), "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "bad", "creds", logger.NewNop())
	_, err := client.Search(context.Background(), "apple")
	assert.Error(t, err)
}
