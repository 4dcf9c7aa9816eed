package auth

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/wassim-hamila/back-end/db"
	"github.com/wassim-hamila/back-end/models"
)

type RegisterInput struct {
	Name     string   `json:"name" binding:"required,min=2"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Age      *int     `json:"age" binding:"omitempty,gte=13,lte=120"`
	Weight   *float64 `json:"weight" binding:"omitempty,gte=20,lte=300"`
	Height   *float64 `json:"height" binding:"omitempty,gte=50,lte=300"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// profileResponse is what register/login/me hand back: the public profile
// fields, plus a fresh token where one was issued.
func profileResponse(user models.User, token string) gin.H {
	resp := gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"age":       user.Age,
		"weight":    user.Weight,
		"height":    user.Height,
		"createdAt": user.CreatedAt,
	}
	if user.ProfilePicture != "" {
		resp["profilePicture"] = user.ProfilePicture
	}
	if token != "" {
		resp["token"] = token
	}
	return resp
}

func Register(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		users := db.Users(client)
		ctx := c.Request.Context()

		var existing models.User
		if err := users.FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing); err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		now := time.Now()
		user := models.User{
			Name:      input.Name,
			Email:     input.Email,
			Password:  string(hashed),
			Followers: []primitive.ObjectID{},
			Following: []primitive.ObjectID{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if input.Age != nil {
			user.Age = *input.Age
		}
		if input.Weight != nil {
			user.Weight = *input.Weight
		}
		if input.Height != nil {
			user.Height = *input.Height
		}

		result, err := users.InsertOne(ctx, user)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		user.ID = result.InsertedID.(primitive.ObjectID)

		token, err := GenerateJWT(user.ID.Hex())
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		recordSession(ctx, client, user.ID, token)

		c.JSON(http.StatusCreated, profileResponse(user, token))
	}
}

func Login(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		var user models.User
		err := db.Users(client).FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}

		if user.Password == "" {
			// OAuth-only account; no password to compare against.
			c.JSON(http.StatusBadRequest, gin.H{"message": "Use Google login for this account"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}

		token, err := GenerateJWT(user.ID.Hex())
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		recordSession(ctx, client, user.ID, token)

		c.JSON(http.StatusOK, profileResponse(user, token))
	}
}

// Me returns the authenticated caller's profile.
func Me(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := UserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var user models.User
		err = db.Users(client).FindOne(c.Request.Context(), bson.M{"_id": uid}).Decode(&user)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, profileResponse(user, ""))
	}
}

func recordSession(ctx context.Context, client *mongo.Client, userID primitive.ObjectID, token string) {
	session := models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(TokenTTL).Unix(),
		CreatedAt: time.Now(),
	}
	if _, err := db.Sessions(client).InsertOne(ctx, session); err != nil {
		log.Println("Session insert error:", err)
	}
}
