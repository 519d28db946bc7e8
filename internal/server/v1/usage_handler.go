package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/provider-gateway/internal/store"
	"github.com/nulzo/provider-gateway/internal/store/cache"
	"github.com/nulzo/provider-gateway/internal/store/model"
	"github.com/nulzo/provider-gateway/pkg/api"
)

const statsTTL = 30 * time.Second

type UsageHandler struct {
	repo  store.Repository
	cache cache.CacheService
}

func NewUsageHandler(repo store.Repository, cache cache.CacheService) *UsageHandler {
	return &UsageHandler{repo: repo, cache: cache}
}

// GetDailyStats serves per-day aggregates for the trailing window. The
// aggregation query scans the whole ledger, so results are memoized briefly.
func (h *UsageHandler) GetDailyStats(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			_ = c.Error(api.BadRequestError("days must be an integer between 1 and 90"))
			return
		}
		days = parsed
	}

	key := fmt.Sprintf("usage:daily:%d", days)

	var stats []model.DailyStats
	if h.cache != nil {
		if err := h.cache.Get(c.Request.Context(), key, &stats); err == nil {
			c.JSON(http.StatusOK, gin.H{"object": "list", "data": stats})
			return
		}
	}

	stats, err := h.repo.Generations().GetDailyStats(c.Request.Context(), days)
	if err != nil {
		_ = c.Error(api.InternalError("Failed to load usage stats", api.WithLog(err)))
		return
	}

	if h.cache != nil {
		_ = h.cache.Set(c.Request.Context(), key, stats, statsTTL)
	}

	c.JSON(http.StatusOK, gin.H{"object": "list", "data": stats})
}

// GetRecent returns the most recent ledger entries, newest first.
func (h *UsageHandler) GetRecent(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			_ = c.Error(api.BadRequestError("limit must be an integer between 1 and 500"))
			return
		}
		limit = parsed
	}

	entries, err := h.repo.Generations().GetRecent(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(api.InternalError("Failed to load recent generations", api.WithLog(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"object": "list", "data": entries})
}
