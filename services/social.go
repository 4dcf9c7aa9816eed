package services

import (
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

const (
	feedWorkoutLimit = 20
	feedGoalLimit    = 10
)

type feedAuthor struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
}

type feedWorkout struct {
	ID             primitive.ObjectID `json:"id"`
	Type           string             `json:"type"`
	Duration       int                `json:"duration"`
	CaloriesBurned int                `json:"caloriesBurned"`
	Date           time.Time          `json:"date"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	User           feedAuthor         `json:"user"`
}

type feedGoal struct {
	ID           primitive.ObjectID `json:"id"`
	Type         string             `json:"type"`
	TargetValue  float64            `json:"targetValue"`
	CurrentValue float64            `json:"currentValue"`
	Description  string             `json:"description,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	User         feedAuthor         `json:"user"`
}

// FollowUser adds the target to the requester's following set and the
// requester to the target's followers. Each side is a single atomic update;
// the $ne guard on the requester side turns a duplicate attempt into a
// conflict, and $addToSet keeps both arrays duplicate-free under races.
func FollowUser(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if targetID == uid {
			c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot follow yourself"})
			return
		}

		ctx := c.Request.Context()
		users := db.Users(client)

		count, err := users.CountDocuments(ctx, bson.M{"_id": targetID})
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		result, err := users.UpdateOne(ctx,
			bson.M{"_id": uid, "following": bson.M{"$ne": targetID}},
			bson.M{"$addToSet": bson.M{"following": targetID}},
		)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "Already following this user"})
			return
		}

		_, err = users.UpdateOne(ctx,
			bson.M{"_id": targetID},
			bson.M{"$addToSet": bson.M{"followers": uid}},
		)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User followed"})
	}
}

// UnfollowUser is idempotent: $pull on a non-member is a silent no-op.
func UnfollowUser(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		ctx := c.Request.Context()
		users := db.Users(client)

		count, err := users.CountDocuments(ctx, bson.M{"_id": targetID})
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		_, err = users.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$pull": bson.M{"following": targetID}})
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		_, err = users.UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{"$pull": bson.M{"followers": uid}})
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User unfollowed"})
	}
}

// GetSocialFeed merges recent activity from everyone the requester follows:
// the 20 newest workouts and the 10 most recently completed goals, each
// carrying its author's name and picture.
func GetSocialFeed(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()
		var requester models.User
		err = db.Users(client).FindOne(ctx, bson.M{"_id": uid}).Decode(&requester)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		workoutItems := []feedWorkout{}
		goalItems := []feedGoal{}
		if len(requester.Following) == 0 {
			c.JSON(http.StatusOK, gin.H{"workouts": workoutItems, "achievements": goalItems})
			return
		}

		authors, err := feedAuthors(c, client, requester.Following)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		workoutOpts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(feedWorkoutLimit)
		workouts, err := findWorkouts(ctx, client, bson.M{"user": bson.M{"$in": requester.Following}}, workoutOpts)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		for _, w := range workouts {
			workoutItems = append(workoutItems, feedWorkout{
				ID:             w.ID,
				Type:           w.Type,
				Duration:       w.Duration,
				CaloriesBurned: w.CaloriesBurned,
				Date:           w.Date,
				Notes:          w.Notes,
				CreatedAt:      w.CreatedAt,
				User:           authors[w.UserID],
			})
		}

		goalOpts := options.Find().
			SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
			SetLimit(feedGoalLimit)
		cursor, err := db.Goals(client).Find(ctx,
			bson.M{"user": bson.M{"$in": requester.Following}, "isCompleted": true}, goalOpts)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		goals := []models.Goal{}
		if err := cursor.All(ctx, &goals); err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		for _, g := range goals {
			goalItems = append(goalItems, feedGoal{
				ID:           g.ID,
				Type:         g.Type,
				TargetValue:  g.TargetValue,
				CurrentValue: g.CurrentValue,
				Description:  g.Description,
				UpdatedAt:    g.UpdatedAt,
				User:         authors[g.UserID],
			})
		}

		c.JSON(http.StatusOK, gin.H{"workouts": workoutItems, "achievements": goalItems})
	}
}

func feedAuthors(c *gin.Context, client *mongo.Client, ids []primitive.ObjectID) (map[primitive.ObjectID]feedAuthor, error) {
	ctx := c.Request.Context()
	opts := options.Find().SetProjection(bson.M{"name": 1, "profilePicture": 1})
	cursor, err := db.Users(client).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	authors := make(map[primitive.ObjectID]feedAuthor, len(users))
	for _, u := range users {
		authors[u.ID] = feedAuthor{ID: u.ID, Name: u.Name, ProfilePicture: u.ProfilePicture}
	}
	return authors, nil
}
