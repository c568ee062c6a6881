// Package api wires the generator, dictionary and store packages
// behind gin, the way the original handlers.go sat in front of
// internal/db.Database: thin JSON-in/JSON-out handlers, request
// validation via binding tags, errors surfaced as {"error": "..."}.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crossplay/backend/internal/auth"
	"github.com/crossplay/backend/internal/middleware"
	"github.com/crossplay/backend/internal/store"
	"github.com/crossplay/backend/pkg/generator"
)

// maxExcludedFingerprints caps how many previously-seen fingerprints a
// client can submit per request; only the most recent ones matter for
// avoiding a repeat, so older entries are dropped.
const maxExcludedFingerprints = 100

// Handlers holds the dependencies every route needs.
type Handlers struct {
	generator   *generator.Generator
	authService *auth.Service
	store       *store.Store
	maxAttempts int
}

// NewHandlers wires a Generator, auth Service and Store into a
// Handlers ready to register on a gin router. store may be nil, in
// which case duplicate-exclusion and history persistence are skipped.
func NewHandlers(gen *generator.Generator, authService *auth.Service, st *store.Store, maxAttempts int) *Handlers {
	if maxAttempts <= 0 {
		maxAttempts = 50
	}
	return &Handlers{generator: gen, authService: authService, store: st, maxAttempts: maxAttempts}
}

// Health reports liveness without touching the dictionary or store.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GenerateCrosswordRequest is the body of POST /api/crossword.
type GenerateCrosswordRequest struct {
	Category             string   `json:"category" binding:"required"`
	Difficulty           string   `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Seed                 *int64   `json:"seed"`
	ExcludedWords        []string `json:"excludedWords"`
	ExcludedFingerprints []string `json:"excludedFingerprints"`
}

// GenerateCrosswordResponse wraps a generated crossword for the wire.
type GenerateCrosswordResponse struct {
	*generator.Result
	Attempts int `json:"attempts"`
}

// GenerateCrossword builds a crossword for the requested category and
// difficulty. It retries generation up to maxAttempts times to avoid
// handing back a fingerprint listed in the request's exclusions or, when
// a store is configured, one any caller has recently seen.
func (h *Handlers) GenerateCrossword(c *gin.Context) {
	var req GenerateCrosswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.ExcludedFingerprints) > maxExcludedFingerprints {
		req.ExcludedFingerprints = req.ExcludedFingerprints[len(req.ExcludedFingerprints)-maxExcludedFingerprints:]
	}
	clientExcluded := make(map[string]bool, len(req.ExcludedFingerprints))
	for _, fp := range req.ExcludedFingerprints {
		clientExcluded[fp] = true
	}

	excludedWords := make(map[string]bool, len(req.ExcludedWords))
	for _, w := range req.ExcludedWords {
		excludedWords[w] = true
	}

	ctx := c.Request.Context()

	var result *generator.Result
	attempts := 0
	for ; attempts < h.maxAttempts; attempts++ {
		r, err := h.generator.Generate(req.Category, req.Difficulty, req.Seed, excludedWords)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		if clientExcluded[r.Fingerprint] {
			continue
		}
		if h.store != nil {
			seen, err := h.store.HasSeen(ctx, req.Category, r.Fingerprint)
			if err == nil && seen {
				continue
			}
		}
		result = r
		break
	}

	if result == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "exhausted attempts without a fresh crossword"})
		return
	}

	if h.store != nil {
		h.store.MarkSeen(ctx, req.Category, result.Fingerprint)
		h.store.RecordGeneration(store.Record{
			ID:          uuid.New().String(),
			Category:    result.Category,
			Difficulty:  result.Difficulty,
			Fingerprint: result.Fingerprint,
			WordCount:   result.Metadata.WordCount,
			FillDensity: result.Metadata.FillDensity,
			CreatedAt:   time.Now(),
		})
	}

	c.JSON(http.StatusOK, GenerateCrosswordResponse{Result: result, Attempts: attempts + 1})
}

// GetCategories lists every dictionary category with its word count
// and availability.
func (h *Handlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.generator.GetCategoriesInfo()})
}

// GetCategoryStats reports the word-length distribution for one category.
func (h *Handlers) GetCategoryStats(c *gin.Context) {
	category := c.Param("category")
	c.JSON(http.StatusOK, h.generator.GetCategoryStats(category))
}

// History returns the most recent generations for a category. Returns
// an empty list when no store is configured.
func (h *Handlers) History(c *gin.Context) {
	category := c.Query("category")
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"history": []store.Record{}})
		return
	}
	records, err := h.store.RecentHistory(category, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// AdminLogin exchanges the configured admin secret for a JWT.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(req.Secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ValidateDictionary checks every dictionary entry and every category's
// size, requires admin auth.
func (h *Handlers) ValidateDictionary(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ok, errs := h.generator.ValidateDictionary()
	c.JSON(http.StatusOK, gin.H{"valid": ok, "errors": errs})
}

// AdminStats reports accumulated generation statistics, requires admin auth.
func (h *Handlers) AdminStats(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"generation":  h.generator.GetGenerationStats(),
		"totalWords":  h.generator.GetTotalWordCount(),
		"performance": middleware.GetMetrics(),
	})
}
