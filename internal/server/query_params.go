package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxRankingLimit = 1000

// parseLimit reads the optional ?limit= parameter for ranking endpoints.
// Zero (the default) means the full ranking.
func parseLimit(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 || parsed > maxRankingLimit {
		return 0, newValidationError("limit", "invalid_limit", "invalid limit")
	}
	return parsed, nil
}
