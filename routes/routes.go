package routes

import (
	"freshtrack/controllers"
	"freshtrack/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Controllers struct {
	Auth      *controllers.AuthController
	User      *controllers.UserController
	Inventory *controllers.InventoryController
	Recipe    *controllers.RecipeController
	Calendar  *controllers.CalendarController
	Alert     *controllers.AlertController
	Device    *controllers.DeviceController
	Realtime  *controllers.RealtimeController
	Feedback  *controllers.FeedbackController
}

func SetupRouter(db *gorm.DB, jwtSecret string, c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/forgot-password", c.Auth.ForgotPassword)
		auth.POST("/reset-password", c.Auth.ResetPassword)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(jwtSecret, db))
	{
		authed.GET("/auth/me", c.Auth.Me)
		authed.POST("/auth/change-password", c.Auth.ChangePassword)
		authed.POST("/auth/delete-account", c.Auth.DeleteAccount)

		authed.GET("/user/profile", c.User.GetProfile)
		authed.PUT("/user/profile", c.User.UpdateProfile)
		authed.POST("/user/notifications/toggle", c.Device.ToggleNotifications)

		authed.GET("/ingredients", c.Inventory.List)
		authed.POST("/ingredients", c.Inventory.AddManual)
		authed.DELETE("/ingredients/:identifier", c.Inventory.Remove)

		authed.POST("/scan", c.Inventory.Scan)
		authed.GET("/scan/history", c.Inventory.ScanHistory)
		authed.POST("/scan/photo", c.Inventory.RecognizePhoto)

		authed.GET("/recipes/suggestions", c.Recipe.GetSuggestions)
		authed.POST("/recipes/suggestions/refresh", c.Recipe.RefreshSuggestions)
		authed.GET("/recipes/saved", c.Recipe.ListSaved)
		authed.POST("/recipes/saved", c.Recipe.SaveRecipe)
		authed.DELETE("/recipes/saved/:id", c.Recipe.DeleteSaved)
		authed.GET("/recipes/:id", c.Recipe.GetDetails)

		authed.GET("/calendar", c.Calendar.GetCalendar)
		authed.GET("/calendar/:date", c.Calendar.GetDay)
		authed.POST("/calendar/assign", c.Calendar.Assign)
		authed.POST("/calendar/remove", c.Calendar.Remove)
		authed.POST("/calendar/move", c.Calendar.Move)

		authed.GET("/alerts", c.Alert.List)
		authed.POST("/devices", c.Device.Register)
		authed.POST("/feedback", c.Feedback.Send)

		authed.GET("/ws/events", c.Realtime.EventsWS)
	}

	return r
}
