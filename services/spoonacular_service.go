package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type RecipeSuggestion struct {
	ID                    int    `json:"id"`
	Title                 string `json:"title"`
	Image                 string `json:"image"`
	UsedIngredientCount   int    `json:"usedIngredientCount"`
	MissedIngredientCount int    `json:"missedIngredientCount"`
}

type RecipeNutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type RecipeDetails struct {
	Title        string `json:"title"`
	Image        string `json:"image"`
	Summary      string `json:"summary"` // HTML
	Instructions string `json:"instructions"`
	Nutrition    struct {
		Nutrients []RecipeNutrient `json:"nutrients"`
	} `json:"nutrition"`
}

type SpoonacularService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewSpoonacularService(baseURL, apiKey string) *SpoonacularService {
	return &SpoonacularService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// FindByIngredients asks Spoonacular for recipes covering the given
// ingredient names. Names are joined comma-separated, case preserved,
// no local de-duplication; ranking=1 is the service's
// "maximize used ingredients" mode. Results come back in the order the
// service ranked them; we never re-rank.
//
// An empty ingredient set short-circuits: no request is made.
func (s *SpoonacularService) FindByIngredients(ctx context.Context, ingredients []string, maxResults int) ([]RecipeSuggestion, error) {
	if len(ingredients) == 0 {
		return []RecipeSuggestion{}, nil
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	q := url.Values{}
	q.Set("ingredients", strings.Join(ingredients, ","))
	q.Set("number", fmt.Sprintf("%d", maxResults))
	q.Set("ranking", "1")
	q.Set("ignorePantry", "true")
	q.Set("apiKey", s.apiKey)
	u := fmt.Sprintf("%s/recipes/findByIngredients?%s", s.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Spoonacular: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Spoonacular response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		// Spoonacular error bodies are JSON {"message": "..."}; surface them raw
		return nil, fmt.Errorf("spoonacular API error %d: %s", resp.StatusCode, string(body))
	}

	var out []RecipeSuggestion
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular JSON: %w", err)
	}
	return out, nil
}

// Details fetches the full recipe card, nutrition included.
func (s *SpoonacularService) Details(ctx context.Context, recipeID int) (*RecipeDetails, error) {
	q := url.Values{}
	q.Set("includeNutrition", "true")
	q.Set("apiKey", s.apiKey)
	u := fmt.Sprintf("%s/recipes/%d/information?%s", s.baseURL, recipeID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe details request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Spoonacular: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Spoonacular response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular API error %d: %s", resp.StatusCode, string(body))
	}

	var details RecipeDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular JSON: %w", err)
	}
	return &details, nil
}
