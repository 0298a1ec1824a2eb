package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upbringing/recommender/internal/domain"
	"github.com/upbringing/recommender/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service         *usecase.RecommenderService
	defaultStrategy string
}

// NewHandler creates a new HTTP handler. defaultStrategy is used when a
// recommendation request does not name one.
func NewHandler(service *usecase.RecommenderService, defaultStrategy string) *Handler {
	if defaultStrategy == "" {
		defaultStrategy = "filter"
	}
	return &Handler{service: service, defaultStrategy: defaultStrategy}
}

// HealthCheck reports service readiness and catalog state
func (h *Handler) HealthCheck(c *gin.Context) {
	status := h.service.Status()
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"products_loaded": status.ProductsLoaded,
		"product_count":   status.ProductCount,
		"index_cached":    status.IndexCached,
	})
}

// LoadProducts replaces the catalog/index cache from a JSON array of raw
// product records.
func (h *Handler) LoadProducts(c *gin.Context) {
	var records []domain.RawRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("invalid product list: %v", err),
		})
		return
	}

	if err := h.service.Load(c.Request.Context(), records); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Loaded and cached %d products", len(records)),
	})
}

// recommendationRequest is the body of POST /recommendations
type recommendationRequest struct {
	Application string             `json:"application"`
	Power       string             `json:"power"`
	Description string             `json:"description"`
	Count       int                `json:"count"`
	Strategy    string             `json:"strategy"`
	Products    []domain.RawRecord `json:"products"`
}

// Recommendations serves a recommendation query against the cached catalog.
// When the request carries an inline product list whose length differs from
// the cached catalog, the cache is replaced first.
func (h *Handler) Recommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}

	if len(req.Products) > 0 && len(req.Products) != h.service.ProductCount() {
		log.Printf("[HTTP] replacing catalog cache with %d inline products", len(req.Products))
		if err := h.service.Load(c.Request.Context(), req.Products); err != nil {
			h.writeError(c, err)
			return
		}
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = h.defaultStrategy
	}

	query := domain.Query{
		Application: req.Application,
		PowerTier:   req.Power,
		Description: req.Description,
		Count:       req.Count,
	}

	results, err := h.service.Recommend(c.Request.Context(), strategy, query)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(results),
		"data":    results,
	})
}

// writeError maps domain errors to HTTP status codes. Internal failures are
// reported with a diagnostic message without crashing the server or the
// shared cache state.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotReady):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Products not loaded. Load a catalog before requesting recommendations.",
		})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEmptyCatalog):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	default:
		log.Printf("[HTTP] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	}
}
