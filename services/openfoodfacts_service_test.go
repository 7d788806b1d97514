package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupParsesProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/737628064502.json", r.URL.Path)
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Rice Noodles",
				"brands": "Thai Kitchen",
				"ingredients_text": "rice, water",
				"allergens_tags": ["en:peanuts"],
				"categories": "Noodles",
				"quantity": "155 g"
			}
		}`))
	}))
	defer srv.Close()

	s := NewOpenFoodFactsService(srv.URL)
	p, err := s.Lookup(context.Background(), "737628064502")
	require.NoError(t, err)
	assert.Equal(t, "737628064502", p.Barcode)
	assert.Equal(t, "Rice Noodles", p.Name)
	assert.Equal(t, "Thai Kitchen", p.Brand)
	assert.Equal(t, []string{"en:peanuts"}, p.Allergens)
	assert.Equal(t, "155 g", p.Quantity)
}

func TestLookupStatusZeroIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// OFF answers 200 with status 0 for unknown barcodes
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer srv.Close()

	s := NewOpenFoodFactsService(srv.URL)
	_, err := s.Lookup(context.Background(), "000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLookupMissingFieldsDefaultEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 1, "product": {"product_name": "Mystery"}}`))
	}))
	defer srv.Close()

	s := NewOpenFoodFactsService(srv.URL)
	p, err := s.Lookup(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Mystery", p.Name)
	assert.Equal(t, "", p.Brand)
	assert.Equal(t, []string{}, p.Allergens)
}

func TestLookupServerErrorIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewOpenFoodFactsService(srv.URL)
	_, err := s.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLookupNetworkErrorIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	s := NewOpenFoodFactsService(srv.URL)
	_, err := s.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLookupMalformedBodyIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	s := NewOpenFoodFactsService(srv.URL)
	_, err := s.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
