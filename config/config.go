package config

import (
	"fmt"
	"os"

	"freshtrack/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config carries everything the services need. Built once in main and
// passed by reference; nothing reads the environment after Load.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	OpenFoodFactsBaseURL string
	SpoonacularBaseURL   string
	SpoonacularAPIKey    string

	AWSRegion     string
	SESEmail      string
	FeedbackEmail string
	S3Bucket      string
	S3Region      string
	CloudFrontURL string
	SNSFCMArn     string
}

func Load() (*Config, error) {
	// .env is optional in deployed environments; env vars win either way.
	_ = godotenv.Load()

	awsRegion := getenv("AWS_REGION", "us-east-1")

	cfg := &Config{
		Port:                 getenv("PORT", "8080"),
		DBHost:               os.Getenv("DB_HOST"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBPort:               getenv("DB_PORT", "5432"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		OpenFoodFactsBaseURL: getenv("OPENFOODFACTS_BASE_URL", "https://world.openfoodfacts.org"),
		SpoonacularBaseURL:   getenv("SPOONACULAR_BASE_URL", "https://api.spoonacular.com"),
		SpoonacularAPIKey:    os.Getenv("SPOONACULAR_API_KEY"),
		AWSRegion:            awsRegion,
		SESEmail:             os.Getenv("SES_EMAIL"),
		FeedbackEmail:        os.Getenv("FEEDBACK_EMAIL"),
		S3Bucket:             os.Getenv("S3_BUCKET"),
		S3Region:             getenv("S3_REGION", awsRegion),
		CloudFrontURL:        os.Getenv("CLOUDFRONT_URL"),
		SNSFCMArn:            os.Getenv("SNS_FCM_ARN"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	if cfg.SpoonacularAPIKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_API_KEY not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate is split out so tests can run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.ScannedProduct{},
		&models.SavedRecipe{},
		&models.MealPlan{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}
