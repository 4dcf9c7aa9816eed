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

type FoodItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"omitempty,gte=0"`
	Calories int     `json:"calories" binding:"gte=0"`
}

type MealInput struct {
	MealType string          `json:"mealType" binding:"required,oneof=Breakfast Lunch Dinner Snack"`
	Foods    []FoodItemInput `json:"foods" binding:"required,min=1,dive"`
	Date     *time.Time      `json:"date"`
	Notes    string          `json:"notes" binding:"omitempty,max=500"`
}

func (in MealInput) foods() []models.FoodItem {
	foods := make([]models.FoodItem, len(in.Foods))
	for i, f := range in.Foods {
		foods[i] = models.FoodItem{Name: f.Name, Quantity: f.Quantity, Calories: f.Calories}
	}
	return foods
}

func ListMeals(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()
		opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
		cursor, err := db.Meals(client).Find(ctx, bson.M{"user": uid}, opts)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		defer cursor.Close(ctx)

		meals := []models.Meal{}
		if err := cursor.All(ctx, &meals); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, meals)
	}
}

func GetMeal(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		meal, ok := fetchMeal(c, client, uid)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, meal)
	}
}

func CreateMeal(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input MealInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		now := time.Now()
		meal := models.Meal{
			UserID:    uid,
			MealType:  input.MealType,
			Foods:     input.foods(),
			Date:      now,
			Notes:     input.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if input.Date != nil {
			meal.Date = *input.Date
		}
		meal.RecalculateTotal()

		result, err := db.Meals(client).InsertOne(c.Request.Context(), meal)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		meal.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, meal)
	}
}

func UpdateMeal(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input MealInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		meal, ok := fetchMeal(c, client, uid)
		if !ok {
			return
		}

		meal.MealType = input.MealType
		meal.Foods = input.foods()
		if input.Date != nil {
			meal.Date = *input.Date
		}
		meal.Notes = input.Notes
		meal.UpdatedAt = time.Now()
		meal.RecalculateTotal()

		_, err = db.Meals(client).ReplaceOne(c.Request.Context(), bson.M{"_id": meal.ID}, meal)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, meal)
	}
}

func DeleteMeal(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		meal, ok := fetchMeal(c, client, uid)
		if !ok {
			return
		}

		_, err = db.Meals(client).DeleteOne(c.Request.Context(), bson.M{"_id": meal.ID})
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Meal deleted", "id": meal.ID.Hex()})
	}
}

func fetchMeal(c *gin.Context, client *mongo.Client, requester primitive.ObjectID) (models.Meal, bool) {
	var meal models.Meal

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
		return meal, false
	}

	err = db.Meals(client).FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&meal)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
		return meal, false
	}
	if err != nil {
		c.Error(err)
		c.Abort()
		return meal, false
	}

	if !CanAccess(requester, meal) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
		return meal, false
	}
	return meal, true
}
