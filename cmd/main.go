package main

import (
	"log"

	"freshtrack/config"
	"freshtrack/controllers"
	"freshtrack/routes"
	"freshtrack/services"
	"freshtrack/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// AWS-backed pieces are optional: the core scan/suggest/plan flow
	// runs without them.
	var mailer *utils.Mailer
	if cfg.SESEmail != "" {
		if mailer, err = utils.NewMailer(cfg.AWSRegion, cfg.SESEmail); err != nil {
			log.Printf("mailer disabled: %v", err)
		}
	}

	var uploader *utils.S3Uploader
	if cfg.S3Bucket != "" {
		if uploader, err = utils.NewS3Uploader(cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontURL); err != nil {
			log.Printf("image upload disabled: %v", err)
		}
	}

	var push *services.PushService
	if cfg.SNSFCMArn != "" {
		if push, err = services.NewPushService(db, cfg.AWSRegion, cfg.SNSFCMArn); err != nil {
			log.Printf("push disabled: %v", err)
		}
	}

	var rek *services.RekognitionService
	if rek, err = services.NewRekognitionService(cfg.AWSRegion); err != nil {
		log.Printf("photo recognition disabled: %v", err)
	}

	hub := services.NewRealtimeHub()
	alerts := services.NewAlertBus(db, hub, push)

	lookup := services.NewOpenFoodFactsService(cfg.OpenFoodFactsBaseURL)
	spoonacular := services.NewSpoonacularService(cfg.SpoonacularBaseURL, cfg.SpoonacularAPIKey)
	suggestions := services.NewSuggestionService(spoonacular, hub, 10)
	inventory := services.NewInventoryService(db, lookup, suggestions, hub, alerts)
	planner := services.NewPlannerService(db, hub)

	auth := services.NewAuthService(db, cfg.JWTSecret, mailer)
	users := services.NewUserService(db, uploader)

	r := routes.SetupRouter(db, cfg.JWTSecret, routes.Controllers{
		Auth:      controllers.NewAuthController(auth),
		User:      controllers.NewUserController(users),
		Inventory: controllers.NewInventoryController(inventory, auth, rek),
		Recipe:    controllers.NewRecipeController(suggestions, spoonacular, planner, inventory),
		Calendar:  controllers.NewCalendarController(planner),
		Alert:     controllers.NewAlertController(alerts),
		Device:    controllers.NewDeviceController(push),
		Realtime:  controllers.NewRealtimeController(hub),
		Feedback:  controllers.NewFeedbackController(mailer, cfg.FeedbackEmail),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
