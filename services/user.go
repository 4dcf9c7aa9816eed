package services

import (
	"context"
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

type ProfileInput struct {
	Name           *string  `json:"name" binding:"omitempty,min=2"`
	Age            *int     `json:"age" binding:"omitempty,gte=13,lte=120"`
	Weight         *float64 `json:"weight" binding:"omitempty,gte=20,lte=300"`
	Height         *float64 `json:"height" binding:"omitempty,gte=50,lte=300"`
	ProfilePicture *string  `json:"profilePicture"`
}

// userRef is the shape follower/following entries are expanded to.
type userRef struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

func GetProfile(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()
		var user models.User
		err = db.Users(client).FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		followers, err := expandUserRefs(ctx, client, user.Followers)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		following, err := expandUserRefs(ctx, client, user.Following)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"age":            user.Age,
			"weight":         user.Weight,
			"height":         user.Height,
			"profilePicture": user.ProfilePicture,
			"followers":      followers,
			"following":      following,
			"createdAt":      user.CreatedAt,
		})
	}
}

func UpdateProfile(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input ProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		set := bson.M{"updatedAt": time.Now()}
		if input.Name != nil {
			set["name"] = *input.Name
		}
		if input.Age != nil {
			set["age"] = *input.Age
		}
		if input.Weight != nil {
			set["weight"] = *input.Weight
		}
		if input.Height != nil {
			set["height"] = *input.Height
		}
		if input.ProfilePicture != nil {
			set["profilePicture"] = *input.ProfilePicture
		}

		ctx := c.Request.Context()
		var user models.User
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = db.Users(client).FindOneAndUpdate(ctx, bson.M{"_id": uid}, bson.M{"$set": set}, opts).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"age":            user.Age,
			"weight":         user.Weight,
			"height":         user.Height,
			"profilePicture": user.ProfilePicture,
		})
	}
}

// GetUserStats computes the composite workout/goal summary over the
// requester's own records. Reads are point-in-time; there is no isolation
// across the two queries.
func GetUserStats(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()
		workouts, err := findWorkouts(ctx, client, bson.M{"user": uid}, nil)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		cursor, err := db.Goals(client).Find(ctx, bson.M{"user": uid})
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

		c.JSON(http.StatusOK, gin.H{
			"workouts": gin.H{
				"total":  len(workouts),
				"stats":  SummarizeWorkouts(workouts),
				"byType": BreakdownByType(workouts),
				"recent": RecentDailyActivity(workouts, time.Now()),
			},
			"goals": SummarizeGoals(goals),
		})
	}
}

func expandUserRefs(ctx context.Context, client *mongo.Client, ids []primitive.ObjectID) ([]userRef, error) {
	refs := []userRef{}
	if len(ids) == 0 {
		return refs, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "email": 1})
	cursor, err := db.Users(client).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		refs = append(refs, userRef{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return refs, nil
}

func findWorkouts(ctx context.Context, client *mongo.Client, filter bson.M, opts *options.FindOptions) ([]models.Workout, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = db.Workouts(client).Find(ctx, filter, opts)
	} else {
		cursor, err = db.Workouts(client).Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []models.Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}
