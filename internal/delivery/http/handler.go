package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sparecarry/itemspec/internal/domain"
	"github.com/sparecarry/itemspec/internal/usecase"
)

const (
	serviceName    = "itemspec"
	serviceVersion = "1.0.0"
)

// ItemSpecUsecase is the subset of the item spec service the handlers need
type ItemSpecUsecase interface {
	Estimate(ctx context.Context, request *domain.EstimateRequest) (*domain.ItemSpecification, error)
	Validate(weight float64, dims domain.Dimensions) domain.ValidationResult
	EstimateFromFeel(dims domain.Dimensions, feel domain.FeelBucket) float64
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	itemSpecs ItemSpecUsecase
}

// NewHandler creates a new HTTP handler. A nil usecase makes the item
// endpoints answer 503.
func NewHandler(itemSpecs ItemSpecUsecase) *Handler {
	return &Handler{itemSpecs: itemSpecs}
}

// validateRequest is the body of POST /items/validate. Missing fields decode
// as zero, which the validator treats as "cannot validate".
type validateRequest struct {
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type feelRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Feel   string  `json:"feel" binding:"required"`
}

type feelBucketResponse struct {
	Feel domain.FeelBucket `json:"feel"`
	domain.DensityBand
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// EstimateItem infers weight, dimensions and category from item text.
// A null estimate is a normal answer, not an error.
func (h *Handler) EstimateItem(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	var req domain.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	spec, err := h.itemSpecs.Estimate(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			badRequest(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to estimate item"})
		return
	}

	if spec == nil {
		c.JSON(http.StatusOK, gin.H{"estimate": nil, "message": "no estimate available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"estimate": spec})
}

// ValidateItem sanity-checks a user-entered weight against dimensions
func (h *Handler) ValidateItem(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	dims := domain.Dimensions{Length: req.Length, Width: req.Width, Height: req.Height}
	c.JSON(http.StatusOK, h.itemSpecs.Validate(req.Weight, dims))
}

// EstimateFromFeel derives a weight from dimensions and a heaviness bucket
func (h *Handler) EstimateFromFeel(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	var req feelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	feel, err := domain.ParseFeelBucket(req.Feel)
	if err != nil {
		badRequest(c, err)
		return
	}

	dims := domain.Dimensions{Length: req.Length, Width: req.Width, Height: req.Height}
	c.JSON(http.StatusOK, gin.H{
		"weight": h.itemSpecs.EstimateFromFeel(dims, feel),
		"feel":   feel,
	})
}

// ListFeelBuckets returns the density band behind each heaviness bucket
func (h *Handler) ListFeelBuckets(c *gin.Context) {
	buckets := make([]feelBucketResponse, 0, len(domain.FeelBuckets))
	for _, feel := range domain.FeelBuckets {
		band, _ := usecase.FeelBand(feel)
		buckets = append(buckets, feelBucketResponse{Feel: feel, DensityBand: band})
	}
	c.JSON(http.StatusOK, gin.H{"buckets": buckets})
}

// ListCategories returns the category defaults used as a last resort
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": usecase.CategoryDefaults()})
}

func (h *Handler) configured(c *gin.Context) bool {
	if h.itemSpecs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Item specification service not configured",
		})
		return false
	}
	return true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
