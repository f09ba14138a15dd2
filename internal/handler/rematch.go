package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/roleradar-api/internal/match"
	"github.com/yourusername/roleradar-api/internal/refdata"
)

type RematchHandler struct {
	tables *refdata.Tables
	engine *match.Engine
}

func NewRematchHandler(tables *refdata.Tables, engine *match.Engine) *RematchHandler {
	return &RematchHandler{tables: tables, engine: engine}
}

// Rematch handles POST /rematch
// Re-runs reconciliation with a user-picked industry while keeping the
// originally inferred job-role text. The picked industry counts as certain.
func (h *RematchHandler) Rematch(c *gin.Context) {
	var req struct {
		IndustryID   string `json:"industryId"`
		JobRoleLabel string `json:"jobRoleLabel"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.JobRoleLabel) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobRoleLabel is required"})
		return
	}

	industry, ok := h.tables.IndustryByID(strings.TrimSpace(req.IndustryID))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown industry id"})
		return
	}

	log.Info().Str("industryId", industry.ID).Str("jobRoleLabel", req.JobRoleLabel).Msg("Re-matching with explicit industry")

	matched := h.engine.MatchWithIndustry(industry, 100, req.JobRoleLabel, nil)
	c.JSON(http.StatusOK, matched)
}
