package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByIngredientsQueryShape(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`[
			{"id": 11, "title": "Tomato Soup", "image": "a.jpg", "usedIngredientCount": 2, "missedIngredientCount": 1},
			{"id": 22, "title": "Onion Tart", "image": "b.jpg", "usedIngredientCount": 1, "missedIngredientCount": 4}
		]`))
	}))
	defer srv.Close()

	s := NewSpoonacularService(srv.URL, "test-key")
	out, err := s.FindByIngredients(context.Background(), []string{"Tomato", "Onion"}, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tomato,Onion"}, gotQuery["ingredients"])
	assert.Equal(t, []string{"10"}, gotQuery["number"])
	assert.Equal(t, []string{"1"}, gotQuery["ranking"])
	assert.Equal(t, []string{"true"}, gotQuery["ignorePantry"])
	assert.Equal(t, []string{"test-key"}, gotQuery["apiKey"])

	// service order is preserved, no local re-ranking
	require.Len(t, out, 2)
	assert.Equal(t, 11, out[0].ID)
	assert.Equal(t, "Tomato Soup", out[0].Title)
	assert.Equal(t, 22, out[1].ID)
	assert.Equal(t, 4, out[1].MissedIngredientCount)
}

func TestFindByIngredientsEmptySetShortCircuits(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	s := NewSpoonacularService(srv.URL, "test-key")
	out, err := s.FindByIngredients(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, int32(0), calls.Load())
}

func TestFindByIngredientsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message": "quota exhausted"}`))
	}))
	defer srv.Close()

	s := NewSpoonacularService(srv.URL, "test-key")
	_, err := s.FindByIngredients(context.Background(), []string{"Tomato"}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestRecipeDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/42/information", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("includeNutrition"))
		w.Write([]byte(`{
			"title": "Tacos",
			"image": "tacos.jpg",
			"summary": "<b>Great</b> tacos",
			"instructions": "Cook them",
			"nutrition": {"nutrients": [{"name": "Calories", "amount": 240.5, "unit": "kcal"}]}
		}`))
	}))
	defer srv.Close()

	s := NewSpoonacularService(srv.URL, "test-key")
	d, err := s.Details(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Tacos", d.Title)
	assert.Equal(t, "Cook them", d.Instructions)
	require.Len(t, d.Nutrition.Nutrients, 1)
	assert.Equal(t, "Calories", d.Nutrition.Nutrients[0].Name)
	assert.Equal(t, 240.5, d.Nutrition.Nutrients[0].Amount)
}
