package planner

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"resale-app/config"
	applog "resale-app/internal/log"

	"github.com/gin-gonic/gin"
)

var generatorClient = &http.Client{Timeout: 15 * time.Second}

// ------------------------------
// POST /planner/suggestions/generate
// ------------------------------
// Invokes the external generator, which writes suggestion rows as a side
// effect. Fire-and-forget: only failure to reach the endpoint is surfaced,
// never its business outcome.
func GenerateSuggestions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if config.SUGGESTIONS_GENERATOR_URL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Suggestion generator not configured"})
		return
	}

	payload, _ := json.Marshal(map[string]any{"user_id": userID})
	req, err := http.NewRequestWithContext(c.Request.Context(),
		http.MethodPost, config.SUGGESTIONS_GENERATOR_URL, bytes.NewReader(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build generator request"})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.SUGGESTIONS_GENERATOR_TOKEN)

	resp, err := generatorClient.Do(req)
	if err != nil {
		applog.Error(c, "planner.generate", err, nil)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to invoke suggestion generator"})
		return
	}
	resp.Body.Close()

	applog.Info(c, "planner.generate", map[string]any{"generator_status": resp.StatusCode})
	c.JSON(http.StatusAccepted, gin.H{"message": "Suggestion generation requested"})
}
