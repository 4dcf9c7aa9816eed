package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"

	"github.com/wassim-hamila/back-end/db"
	"github.com/wassim-hamila/back-end/models"
)

// Set at startup when Google login is configured; the routes are only
// mounted when it is non-nil.
var (
	GoogleOauthConfig *oauth2.Config
	FrontendURL       string
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"

func GoogleLogin(c *gin.Context) {
	state := setStateCookie(c)
	url := GoogleOauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "select_account"))
	c.Redirect(http.StatusTemporaryRedirect, url)
}

func GoogleCallback(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		cookie, err := c.Cookie("oauthstate")
		if err != nil || state != cookie {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid state parameter"})
			return
		}

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing code parameter"})
			return
		}

		ctx := c.Request.Context()
		token, err := GoogleOauthConfig.Exchange(ctx, code)
		if err != nil {
			log.Println("OAuth token exchange error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to exchange token"})
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoEndpoint, nil)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Println("User info fetch error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user info"})
			return
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		var googleUser struct {
			Sub       string `json:"sub"`
			Email     string `json:"email"`
			Name      string `json:"name"`
			GivenName string `json:"given_name"`
			Picture   string `json:"picture"`
		}
		if err := json.Unmarshal(body, &googleUser); err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		if googleUser.Sub == "" || googleUser.Email == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid user info: missing ID or email"})
			return
		}

		users := db.Users(client)
		var user models.User
		err = users.FindOne(ctx, bson.M{"email": googleUser.Email}).Decode(&user)
		if err != nil {
			name := googleUser.Name
			if name == "" {
				name = googleUser.GivenName
			}
			now := time.Now()
			user = models.User{
				GoogleID:       googleUser.Sub,
				Email:          googleUser.Email,
				Name:           name,
				ProfilePicture: googleUser.Picture,
				Followers:      []primitive.ObjectID{},
				Following:      []primitive.ObjectID{},
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			result, err := users.InsertOne(ctx, user)
			if err != nil {
				c.Error(err)
				c.Abort()
				return
			}
			user.ID = result.InsertedID.(primitive.ObjectID)
		} else if user.GoogleID == "" {
			c.JSON(http.StatusConflict, gin.H{"message": "Email registered with password. Use email login."})
			return
		}

		tokenString, err := GenerateJWT(user.ID.Hex())
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		recordSession(ctx, client, user.ID, tokenString)

		c.Redirect(http.StatusFound, FrontendURL+"/?token="+tokenString)
	}
}

func setStateCookie(c *gin.Context) string {
	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie("oauthstate", state, 7200, "/", "", false, true)
	return state
}
