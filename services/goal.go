package services

import (
	"errors"
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

type GoalInput struct {
	Type         string    `json:"type" binding:"required,oneof=Weight TrainingHours CaloriesBurned Distance Other"`
	TargetValue  float64   `json:"targetValue" binding:"required,gt=0"`
	CurrentValue *float64  `json:"currentValue" binding:"omitempty,gte=0"`
	Deadline     time.Time `json:"deadline" binding:"required"`
	Description  string    `json:"description" binding:"omitempty,max=500"`
}

// GoalUpdateInput is partial: only supplied fields change, so everything
// is a pointer. An omitted deadline is not re-checked.
type GoalUpdateInput struct {
	Type         *string    `json:"type" binding:"omitempty,oneof=Weight TrainingHours CaloriesBurned Distance Other"`
	TargetValue  *float64   `json:"targetValue" binding:"omitempty,gt=0"`
	CurrentValue *float64   `json:"currentValue" binding:"omitempty,gte=0"`
	Deadline     *time.Time `json:"deadline"`
	Description  *string    `json:"description" binding:"omitempty,max=500"`
}

var errPastDeadline = errors.New("deadline must be in the future")

// ValidateDeadline rejects deadlines at or before the moment of the request.
func ValidateDeadline(deadline, now time.Time) error {
	if !deadline.After(now) {
		return errPastDeadline
	}
	return nil
}

func ListGoals(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Goals(client).Find(ctx, bson.M{"user": uid}, opts)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		defer cursor.Close(ctx)

		goals := []models.Goal{}
		if err := cursor.All(ctx, &goals); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, goals)
	}
}

func GetGoal(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		goal, ok := fetchGoal(c, client, uid)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, goal)
	}
}

func CreateGoal(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input GoalInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		if err := ValidateDeadline(input.Deadline, time.Now()); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Deadline must be in the future"})
			return
		}

		now := time.Now()
		goal := models.Goal{
			UserID:      uid,
			Type:        input.Type,
			TargetValue: input.TargetValue,
			Deadline:    input.Deadline,
			Description: input.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if input.CurrentValue != nil {
			goal.CurrentValue = *input.CurrentValue
		}
		goal.RecomputeCompletion()

		result, err := db.Goals(client).InsertOne(c.Request.Context(), goal)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		goal.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, goal)
	}
}

func UpdateGoal(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input GoalUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		if input.Deadline != nil {
			if err := ValidateDeadline(*input.Deadline, time.Now()); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Deadline must be in the future"})
				return
			}
		}

		goal, ok := fetchGoal(c, client, uid)
		if !ok {
			return
		}

		if input.Type != nil {
			goal.Type = *input.Type
		}
		if input.TargetValue != nil {
			goal.TargetValue = *input.TargetValue
		}
		if input.CurrentValue != nil {
			goal.CurrentValue = *input.CurrentValue
		}
		if input.Deadline != nil {
			goal.Deadline = *input.Deadline
		}
		if input.Description != nil {
			goal.Description = *input.Description
		}
		goal.UpdatedAt = time.Now()
		goal.RecomputeCompletion()

		_, err = db.Goals(client).ReplaceOne(c.Request.Context(), bson.M{"_id": goal.ID}, goal)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, goal)
	}
}

func DeleteGoal(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		goal, ok := fetchGoal(c, client, uid)
		if !ok {
			return
		}

		_, err = db.Goals(client).DeleteOne(c.Request.Context(), bson.M{"_id": goal.ID})
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Goal deleted", "id": goal.ID.Hex()})
	}
}

func fetchGoal(c *gin.Context, client *mongo.Client, requester primitive.ObjectID) (models.Goal, bool) {
	var goal models.Goal

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Goal not found"})
		return goal, false
	}

	err = db.Goals(client).FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&goal)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Goal not found"})
		return goal, false
	}
	if err != nil {
		log.Println("Goal fetch error:", err)
		c.Error(err)
		c.Abort()
		return goal, false
	}

	if !CanAccess(requester, goal) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
		return goal, false
	}
	return goal, true
}
