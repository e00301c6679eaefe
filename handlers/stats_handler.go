package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fluffyrudy-blog-api/helper"
	"fluffyrudy-blog-api/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats()
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
