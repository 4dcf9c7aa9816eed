package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func routerWith(production bool, err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(production))
	r.GET("/boom", func(c *gin.Context) {
		c.Error(err)
		c.Abort()
	})
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestDuplicateKeyBecomesConflict(t *testing.T) {
	err := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	w := serve(routerWith(true, err))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestNoDocumentsBecomesNotFound(t *testing.T) {
	w := serve(routerWith(true, mongo.ErrNoDocuments))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownErrorBecomesInternal(t *testing.T) {
	w := serve(routerWith(true, assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "stack", "no stack in production mode")
}

func TestStackAttachedOutsideProduction(t *testing.T) {
	w := serve(routerWith(false, assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "stack")
}
