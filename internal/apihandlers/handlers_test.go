package apihandlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/internal/app"
	"parley/internal/config"
	"parley/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Completion.Provider = "none" // no credential, no network
	appInstance, err := app.NewApp(cfg)
	require.NoError(t, err)

	handler := NewAPIHandler(appInstance)
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/categorize", handler.CategorizeHandler)
	v1.POST("/respond", handler.RespondHandler)
	v1.GET("/status", handler.StatusHandler)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCategorizeHandler(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/categorize", CategorizeRequest{Prompt: "Summarize the history of AI"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp CategorizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Summarize the history of AI", resp.Prompt)
	assert.Equal(t, "summarization", string(resp.Category))
}

func TestCategorizeHandler_MissingPrompt(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/categorize", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bad_request", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "prompt")
}

func TestRespondHandler_TemplateFallback(t *testing.T) {
	router := newTestRouter(t)

	// use_external=true without any configured provider must still
	// yield a complete response, never an error status.
	w := postJSON(router, "/api/v1/respond", RespondRequest{
		Prompt:      "What is the capital of France?",
		UseExternal: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ResponseResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "general", string(resp.Category))
	assert.NotEmpty(t, resp.Response)
	assert.False(t, resp.UsedExternal)
	assert.NotEmpty(t, resp.Err, "the fallback reason is surfaced for diagnostics")
}

func TestRespondHandler_SuppliedCategory(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/respond", RespondRequest{
		Prompt:   "Summarize this text",
		Category: "grammar-check",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ResponseResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "grammar-check", string(resp.Category))
	assert.False(t, resp.UsedExternal)
	assert.Empty(t, resp.Err)
}

func TestRespondHandler_InvalidCategory(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/respond", RespondRequest{
		Prompt:   "hello",
		Category: "poetry",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown category")
}

func TestStatusHandler_NoCredential(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.ExternalAvailable)
}
