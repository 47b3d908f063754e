package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/docs"
)

func fetchDoc(t *testing.T, app *fiber.App, host string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	req.Host = host
	req.Header.Set("X-Forwarded-Proto", "https")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	return doc
}

func TestRegisterSwagger(t *testing.T) {
	t.Run("configured host is fixed", func(t *testing.T) {
		app := fiber.New()
		RegisterSwagger(app, "docs.example.com")

		for _, host := range []string{"a.internal:5001", "b.internal:5001"} {
			doc := fetchDoc(t, app, host)
			assert.Equal(t, "docs.example.com", doc["host"])
		}
		assert.Equal(t, "docs.example.com", docs.SwaggerInfo.Host)
		assert.Empty(t, docs.SwaggerInfo.Schemes)
	})

	t.Run("requests do not rewrite the spec", func(t *testing.T) {
		app := fiber.New()
		RegisterSwagger(app, "")

		doc := fetchDoc(t, app, "evil.example.com")
		assert.Equal(t, "", doc["host"])
		assert.Empty(t, docs.SwaggerInfo.Host)
		assert.Empty(t, docs.SwaggerInfo.Schemes)
	})
}
