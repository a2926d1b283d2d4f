package routes

import (
	"log"

	"github.com/Tshegofatso85/Footprint-Logger/controllers"
	"github.com/Tshegofatso85/Footprint-Logger/middlewares"
	"github.com/Tshegofatso85/Footprint-Logger/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	store := services.NewGormStore(db)
	hub := services.NewRealtimeHub()

	sinks := services.FanoutSink{hub}
	push, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
	} else {
		sinks = append(sinks, push)
	}

	activitySvc := services.NewActivityService(store)
	summarySvc := services.NewSummaryService(store, store)
	goalSvc := services.NewWeeklyGoalService(store, sinks)

	authCtl := controllers.NewAuthController(goalSvc)
	activityCtl := controllers.NewActivityController(activitySvc)
	summaryCtl := controllers.NewSummaryController(summarySvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	deviceCtl := controllers.NewDeviceController(push)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Protected activity + aggregation routes
	activities := r.Group("/activities")
	activities.Use(middlewares.AuthMiddleware())
	{
		activities.POST("/log", activityCtl.Log)
		activities.GET("/my-logs", activityCtl.MyLogs)
		activities.GET("/all", activityCtl.All)
		activities.DELETE("/:logId/activities/:activityId", activityCtl.Delete)

		activities.GET("/my-total", summaryCtl.MyTotal)
		activities.GET("/weekly-summary", summaryCtl.WeeklySummary)
		activities.GET("/community-average", summaryCtl.CommunityAverage)
		activities.GET("/leaderboard", summaryCtl.Leaderboard)
	}

	goal := r.Group("/goal")
	goal.Use(middlewares.AuthMiddleware())
	{
		goal.GET("/weekly", goalCtl.Weekly)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/register", deviceCtl.Register)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/tips", realtimeCtl.TipsWS)
	}

	return r
}
