package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wassim-hamila/back-end/auth"
	"github.com/wassim-hamila/back-end/config"
	"github.com/wassim-hamila/back-end/middlewares"
	"github.com/wassim-hamila/back-end/services"
)

// Setup assembles the full HTTP surface.
func Setup(cfg *config.Config, client *mongo.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middlewares.ErrorHandler(cfg.IsProduction()))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	protect := auth.Middleware()
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(client))
		authGroup.POST("/login", auth.Login(client))
		authGroup.POST("/me", protect, auth.Me(client))
		if cfg.GoogleEnabled() {
			authGroup.GET("/google/login", auth.GoogleLogin)
			authGroup.GET("/google/callback", auth.GoogleCallback(client))
		}
	}

	workouts := api.Group("/workouts", protect)
	{
		workouts.GET("", services.ListWorkouts(client))
		workouts.POST("", services.CreateWorkout(client))
		workouts.GET("/:id", services.GetWorkout(client))
		workouts.PUT("/:id", services.UpdateWorkout(client))
		workouts.DELETE("/:id", services.DeleteWorkout(client))
	}

	goals := api.Group("/goals", protect)
	{
		goals.GET("", services.ListGoals(client))
		goals.POST("", services.CreateGoal(client))
		goals.GET("/:id", services.GetGoal(client))
		goals.PUT("/:id", services.UpdateGoal(client))
		goals.DELETE("/:id", services.DeleteGoal(client))
	}

	meals := api.Group("/meals", protect)
	{
		meals.GET("", services.ListMeals(client))
		meals.POST("", services.CreateMeal(client))
		meals.GET("/:id", services.GetMeal(client))
		meals.PUT("/:id", services.UpdateMeal(client))
		meals.DELETE("/:id", services.DeleteMeal(client))
	}

	users := api.Group("/users", protect)
	{
		users.GET("/profile", services.GetProfile(client))
		users.PUT("/profile", services.UpdateProfile(client))
		users.GET("/stats", services.GetUserStats(client))
		users.GET("/feed", services.GetSocialFeed(client))
		users.POST("/follow/:id", services.FollowUser(client))
		users.DELETE("/follow/:id", services.UnfollowUser(client))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Fitness Tracker API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":     "/api/auth",
				"workouts": "/api/workouts",
				"goals":    "/api/goals",
				"meals":    "/api/meals",
				"users":    "/api/users",
			},
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
