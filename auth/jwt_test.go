package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Middleware(), func(c *gin.Context) {
		uid, err := UserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": uid.Hex()})
	})
	return r
}

func TestGenerateAndValidateJWT(t *testing.T) {
	JwtSecret = []byte("test-secret")
	TokenTTL = time.Hour

	id := primitive.NewObjectID().Hex()
	token, err := GenerateJWT(id)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	JwtSecret = []byte("test-secret")
	router := protectedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/private", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	JwtSecret = []byte("test-secret")
	router := protectedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareRejectsForgedToken(t *testing.T) {
	JwtSecret = []byte("test-secret")
	TokenTTL = time.Hour
	token, err := GenerateJWT(primitive.NewObjectID().Hex())
	assert.NoError(t, err)

	// token signed with a different secret must not validate
	JwtSecret = []byte("other-secret")
	router := protectedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareAdmitsValidToken(t *testing.T) {
	JwtSecret = []byte("test-secret")
	TokenTTL = time.Hour
	router := protectedRouter()

	id := primitive.NewObjectID().Hex()
	token, err := GenerateJWT(id)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)
}
