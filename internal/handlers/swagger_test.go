package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kosarica/price-comparator/docs"
)

// TestSwaggerServesRegisteredRoutes checks that every route mounted by
// RegisterRoutes is documented in the served swagger doc.
func TestSwaggerServesRegisteredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, RouteOptions{})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	w := doRequest(t, router, http.MethodGet, "/swagger/doc.json", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	for _, route := range router.Routes() {
		if route.Path == "/swagger/*any" {
			continue
		}
		path := ginPathToSwagger(route.Path)
		methods, ok := doc.Paths[path]
		if assert.True(t, ok, "undocumented path %s", path) {
			_, ok = methods[strings.ToLower(route.Method)]
			assert.True(t, ok, "undocumented %s %s", route.Method, path)
		}
	}
}

// ginPathToSwagger turns /api/compare/:productId into /api/compare/{productId}
func ginPathToSwagger(path string) string {
	out := make([]byte, 0, len(path)+4)
	inParam := false
	for i := 0; i < len(path); i++ {
		switch {
		case path[i] == ':':
			out = append(out, '{')
			inParam = true
		case path[i] == '/' && inParam:
			out = append(out, '}', '/')
			inParam = false
		default:
			out = append(out, path[i])
		}
	}
	if inParam {
		out = append(out, '}')
	}
	return string(out)
}
