package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("S3_REGION", "")
	t.Setenv("OPENFOODFACTS_BASE_URL", "")
	t.Setenv("SPOONACULAR_BASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://world.openfoodfacts.org", cfg.OpenFoodFactsBaseURL)
	assert.Equal(t, "https://api.spoonacular.com", cfg.SpoonacularBaseURL)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	// S3 inherits the resolved AWS region, defaults included
	assert.Equal(t, "us-east-1", cfg.S3Region)
}

func TestLoadS3RegionOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("S3_REGION", "eu-central-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "eu-central-1", cfg.S3Region)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SPOONACULAR_API_KEY", "")
	_, err = Load()
	assert.Error(t, err)
}
