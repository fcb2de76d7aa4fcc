package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"luminax_client/internal/model"
	"luminax_client/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h gin.HandlerFunc) int {
	r := gin.New()
	r.GET("/", h, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w.Code
}

func TestRequireUser(t *testing.T) {
	store := state.NewStore(state.Initial())
	assert.Equal(t, http.StatusUnauthorized, serve(RequireUser(store)))

	store.Dispatch(state.SetUser{User: &model.User{ID: "1", Role: model.Student}})
	assert.Equal(t, http.StatusNoContent, serve(RequireUser(store)))
}
