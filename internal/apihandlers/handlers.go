package apihandlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"parley/internal/app"
	"parley/internal/usagetracker"
	"parley/pkg/categorizer"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// CategorizeRequest is the JSON body for POST /api/v1/categorize.
type CategorizeRequest struct {
	Prompt string `json:"prompt"`
}

// CategorizeResponse echoes the prompt with its resolved category.
type CategorizeResponse struct {
	Prompt   string               `json:"prompt"`
	Category categorizer.Category `json:"category"`
}

func (h *APIHandler) CategorizeHandler(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Prompt == "" {
		BadRequest(c, "Missing 'prompt' field")
		return
	}

	c.JSON(http.StatusOK, CategorizeResponse{
		Prompt:   req.Prompt,
		Category: h.App.ResponseService.Categorize(req.Prompt),
	})
}

// RespondRequest is the JSON body for POST /api/v1/respond. Category
// is optional; when present it must be a known label and skips
// categorization.
type RespondRequest struct {
	Prompt      string `json:"prompt"`
	Category    string `json:"category"`
	UseExternal bool   `json:"use_external"`
}

func (h *APIHandler) RespondHandler(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Prompt == "" {
		BadRequest(c, "Missing 'prompt' field")
		return
	}

	var category *categorizer.Category
	if req.Category != "" {
		cat, err := categorizer.ParseCategory(req.Category)
		if err != nil {
			BadRequest(c, fmt.Sprintf("Invalid 'category' field: %v", err))
			return
		}
		category = &cat
	}

	requestID := uuid.NewString()
	result := h.App.ResponseService.Respond(c.Request.Context(), req.Prompt, category, req.UseExternal)

	if result.Err != "" {
		log.Warnf("API respond request_id=%s category=%s fell back to templates: %s", requestID, result.Category, result.Err)
	} else {
		log.Debugf("API respond request_id=%s category=%s used_external=%v", requestID, result.Category, result.UsedExternal)
	}

	c.JSON(http.StatusOK, result)
}

// StatusResponse reports external provider availability without
// invoking it, plus process-local usage totals.
type StatusResponse struct {
	ExternalAvailable bool                `json:"external_available"`
	Provider          string              `json:"provider,omitempty"`
	Model             string              `json:"model,omitempty"`
	Usage             usagetracker.Totals `json:"usage"`
}

func (h *APIHandler) StatusHandler(c *gin.Context) {
	resp := StatusResponse{
		ExternalAvailable: h.App.ResponseService.ExternalAvailable(),
		Usage:             h.App.ResponseService.Usage(),
	}
	if provider := h.App.ResponseService.Provider(); provider != nil {
		resp.Provider = provider.Name()
		resp.Model = provider.ModelName()
	}
	c.JSON(http.StatusOK, resp)
}
