package services

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wassim-hamila/back-end/auth"
	"github.com/wassim-hamila/back-end/db"
	"github.com/wassim-hamila/back-end/models"
)

type WorkoutInput struct {
	Type           string     `json:"type" binding:"required,oneof=Cardio Strength Yoga Running Swimming Cycling Other"`
	Duration       int        `json:"duration" binding:"required,gte=1,lte=1440"`
	CaloriesBurned *int       `json:"caloriesBurned" binding:"required,gte=0,lte=10000"`
	Date           *time.Time `json:"date"`
	Notes          string     `json:"notes" binding:"omitempty,max=500"`
}

func ListWorkouts(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()
		opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
		cursor, err := db.Workouts(client).Find(ctx, bson.M{"user": uid}, opts)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		defer cursor.Close(ctx)

		workouts := []models.Workout{}
		if err := cursor.All(ctx, &workouts); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, workouts)
	}
}

func GetWorkout(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		workout, ok := fetchWorkout(c, client, uid)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, workout)
	}
}

func CreateWorkout(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input WorkoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		now := time.Now()
		workout := models.Workout{
			UserID:         uid,
			Type:           input.Type,
			Duration:       input.Duration,
			CaloriesBurned: *input.CaloriesBurned,
			Date:           now,
			Notes:          input.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if input.Date != nil {
			workout.Date = *input.Date
		}

		result, err := db.Workouts(client).InsertOne(c.Request.Context(), workout)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		workout.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, workout)
	}
}

func UpdateWorkout(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input WorkoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		workout, ok := fetchWorkout(c, client, uid)
		if !ok {
			return
		}

		workout.Type = input.Type
		workout.Duration = input.Duration
		workout.CaloriesBurned = *input.CaloriesBurned
		if input.Date != nil {
			workout.Date = *input.Date
		}
		workout.Notes = input.Notes
		workout.UpdatedAt = time.Now()

		_, err = db.Workouts(client).ReplaceOne(c.Request.Context(), bson.M{"_id": workout.ID}, workout)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, workout)
	}
}

func DeleteWorkout(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		workout, ok := fetchWorkout(c, client, uid)
		if !ok {
			return
		}

		_, err = db.Workouts(client).DeleteOne(c.Request.Context(), bson.M{"_id": workout.ID})
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Workout deleted", "id": workout.ID.Hex()})
	}
}

// fetchWorkout loads the :id workout and applies the ownership policy,
// writing the 404/403 response itself when the caller may not proceed.
func fetchWorkout(c *gin.Context, client *mongo.Client, requester primitive.ObjectID) (models.Workout, bool) {
	var workout models.Workout

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workout not found"})
		return workout, false
	}

	err = db.Workouts(client).FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&workout)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workout not found"})
		return workout, false
	}
	if err != nil {
		log.Println("Workout fetch error:", err)
		c.Error(err)
		c.Abort()
		return workout, false
	}

	if !CanAccess(requester, workout) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
		return workout, false
	}
	return workout, true
}
