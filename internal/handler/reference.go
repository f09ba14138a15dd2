package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/roleradar-api/internal/refdata"
)

type ReferenceHandler struct {
	tables *refdata.Tables
}

func NewReferenceHandler(tables *refdata.Tables) *ReferenceHandler {
	return &ReferenceHandler{tables: tables}
}

// ListIndustries handles GET /industries
// Returns the full industry shortlist the client offers for correction.
func (h *ReferenceHandler) ListIndustries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"industries": h.tables.Industries})
}
