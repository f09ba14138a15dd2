package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/roleradar-api/internal/match"
	"github.com/yourusername/roleradar-api/internal/model"
	"github.com/yourusername/roleradar-api/internal/service"
)

// Oracle is the inference boundary: one call per analysis, no retry.
type Oracle interface {
	InferCompanyProfile(ctx context.Context, websiteURL string) (*model.CompanyInference, error)
}

type AnalyzeHandler struct {
	oracle Oracle
	engine *match.Engine
}

func NewAnalyzeHandler(oracle Oracle, engine *match.Engine) *AnalyzeHandler {
	return &AnalyzeHandler{oracle: oracle, engine: engine}
}

// Analyze handles POST /analyze
//
// Flow:
//  1. Validate the website URL.
//  2. Ask Claude for an industry/job-role inference.
//  3. On any oracle failure, substitute the offline hostname heuristic.
//  4. Reconcile the labels against the reference tables and respond.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req struct {
		WebsiteURL string `json:"websiteUrl"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	websiteURL := strings.TrimSpace(req.WebsiteURL)
	if !validWebsiteURL(websiteURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websiteUrl must be a valid absolute http(s) URL"})
		return
	}

	log.Info().Str("url", websiteURL).Msg("Analyzing company website")

	source := "ai"
	inference, err := h.oracle.InferCompanyProfile(c.Request.Context(), websiteURL)
	if err != nil {
		// Never a hard failure for the caller — fall back to the
		// hostname heuristic at reduced confidence.
		log.Warn().Err(err).Str("url", websiteURL).Msg("AI inference failed, using offline heuristic")
		inference = service.HeuristicInference(websiteURL)
		source = "heuristic"
	}

	matched := h.engine.MatchCompanyData(inference.Industry, inference.JobRole, inference.Skills)

	c.JSON(http.StatusOK, gin.H{
		"source":    source,
		"inference": inference,
		"matched":   matched,
	})
}

// validWebsiteURL accepts absolute http/https URLs only
func validWebsiteURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
