package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrProductNotFound covers every terminal lookup outcome: network
// failure, non-2xx status, a malformed body, or the service's own
// status flag saying the barcode is unknown. A scan either resolves to
// a product or it doesn't; callers never retry.
var ErrProductNotFound = errors.New("product not found")

type ProductInfo struct {
	Barcode     string   `json:"barcode"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Ingredients string   `json:"ingredients"`
	Allergens   []string `json:"allergens"`
	Category    string   `json:"category"`
	Quantity    string   `json:"quantity"`
}

type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService(baseURL string) *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type productResponse struct {
	Status  int `json:"status"` // 0 = not found
	Product struct {
		ProductName     string   `json:"product_name"`
		Brands          string   `json:"brands"`
		IngredientsText string   `json:"ingredients_text"`
		AllergensTags   []string `json:"allergens_tags"`
		Categories      string   `json:"categories"`
		Quantity        string   `json:"quantity"`
	} `json:"product"`
}

// Lookup resolves a barcode against the OpenFoodFacts product API.
// One attempt only; any failure is ErrProductNotFound.
func (s *OpenFoodFactsService) Lookup(ctx context.Context, barcode string) (*ProductInfo, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, url.PathEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create product request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ErrProductNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrProductNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var pr productResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, ErrProductNotFound
	}
	if pr.Status == 0 {
		return nil, ErrProductNotFound
	}

	allergens := pr.Product.AllergensTags
	if allergens == nil {
		allergens = []string{}
	}

	return &ProductInfo{
		Barcode:     barcode,
		Name:        pr.Product.ProductName,
		Brand:       pr.Product.Brands,
		Ingredients: pr.Product.IngredientsText,
		Allergens:   allergens,
		Category:    pr.Product.Categories,
		Quantity:    pr.Product.Quantity,
	}, nil
}
