package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sparecarry/itemspec/internal/domain"
)

// cacheKeyNamespace scopes the name-based UUIDs used as cache keys
var cacheKeyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://sparecarry.app/itemspec"))

// ItemSpecServiceConfig holds configuration for the item spec service
type ItemSpecServiceConfig struct {
	CacheTTL time.Duration
}

// ItemSpecService fronts the inference engine with an optional cache.
// The engine stays pure; memoization lives here.
type ItemSpecService struct {
	engine   *InferenceEngine
	cache    domain.CacheRepository
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewItemSpecService creates a new service. cache may be nil to disable memoization.
func NewItemSpecService(
	engine *InferenceEngine,
	cache domain.CacheRepository,
	logger zerolog.Logger,
	config ItemSpecServiceConfig,
) *ItemSpecService {
	if engine == nil {
		engine = NewInferenceEngine()
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ItemSpecService{
		engine:   engine,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "itemspec").Logger(),
	}
}

// Estimate resolves a request into an item specification.
// Flow: check cache -> run engine -> cache non-nil result -> return.
// A nil spec with a nil error means no estimate is available.
func (s *ItemSpecService) Estimate(
	ctx context.Context,
	request *domain.EstimateRequest,
) (*domain.ItemSpecification, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := generateCacheKey(request)

	if s.cache != nil {
		cached, err := s.getFromCache(ctx, cacheKey)
		if err == nil && cached != nil {
			s.logger.Debug().Str("key", cacheKey).Msg("cache hit")
			return cached, nil
		}
	}

	spec := s.engine.Infer(request.Title, request.Description, request.Category)
	if spec == nil {
		s.logger.Debug().Str("title", request.Title).Str("category", request.Category).Msg("no estimate available")
		return nil, nil
	}

	s.logger.Debug().
		Str("title", request.Title).
		Str("source", spec.Source).
		Float64("weight", spec.Weight).
		Msg("estimated")

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, spec, s.cacheTTL); err != nil {
			// Caching is best effort
			s.logger.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache estimate")
		}
	}

	return spec, nil
}

// Validate checks a weight against the supplied dimensions
func (s *ItemSpecService) Validate(weight float64, dims domain.Dimensions) domain.ValidationResult {
	return ValidateWeightAgainstDimensions(weight, dims.Length, dims.Width, dims.Height)
}

// EstimateFromFeel derives a weight from dimensions and a heaviness impression
func (s *ItemSpecService) EstimateFromFeel(dims domain.Dimensions, feel domain.FeelBucket) float64 {
	return EstimateWeightFromFeel(dims.Length, dims.Width, dims.Height, feel)
}

// generateCacheKey derives a stable key from the text the engine actually
// sees, so requests differing only in case share an entry.
// Format: "itemspec:{uuid}"
func generateCacheKey(request *domain.EstimateRequest) string {
	input := NormalizeItemText(request.Title, request.Description) + "\x00" + normalizeCategory(request.Category)
	return "itemspec:" + uuid.NewSHA1(cacheKeyNamespace, []byte(input)).String()
}

// getFromCache retrieves an item specification from cache
func (s *ItemSpecService) getFromCache(ctx context.Context, key string) (*domain.ItemSpecification, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case *domain.ItemSpecification:
		return v, nil
	case map[string]interface{}:
		return mapToItemSpecification(v)
	default:
		return nil, domain.ErrCacheMiss
	}
}

// mapToItemSpecification converts a map (from JSON cache) to ItemSpecification.
// Entries without a source are treated as misses since every stored spec has one.
func mapToItemSpecification(data map[string]interface{}) (*domain.ItemSpecification, error) {
	result := &domain.ItemSpecification{}

	if v, ok := data["source"].(string); ok {
		result.Source = v
	}
	if result.Source == "" {
		return nil, domain.ErrCacheMiss
	}
	if v, ok := data["weight"].(float64); ok {
		result.Weight = v
	}
	if v, ok := data["category"].(string); ok {
		result.Category = v
	}

	if dims, ok := data["dimensions"].(map[string]interface{}); ok {
		if v, ok := dims["length"].(float64); ok {
			result.Dimensions.Length = v
		}
		if v, ok := dims["width"].(float64); ok {
			result.Dimensions.Width = v
		}
		if v, ok := dims["height"].(float64); ok {
			result.Dimensions.Height = v
		}
	}

	return result, nil
}
