package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
)

// statisticsHandler handles HTTP requests for dashboard reporting.
type statisticsHandler struct {
	statsService portssvc.StatisticsSvcFacade
	userService  portssvc.UserReaderSvc
}

// newStatisticsHandler creates a new statisticsHandler.
func newStatisticsHandler(ss portssvc.StatisticsSvcFacade, us portssvc.UserReaderSvc) *statisticsHandler {
	return &statisticsHandler{
		statsService: ss,
		userService:  us,
	}
}

// registerStatisticsRoutes registers the reporting routes.
func registerStatisticsRoutes(rg *gin.RouterGroup, statsService portssvc.StatisticsSvcFacade, userService portssvc.UserReaderSvc) {
	h := newStatisticsHandler(statsService, userService)

	stats := rg.Group("/statistics")
	{
		stats.GET("", h.getHousingStats)
		stats.GET("/fermes", h.getFermeStats)
		stats.GET("/age-distribution", h.getAgeDistribution)
	}
}

// getHousingStats godoc
// @Summary Dashboard statistics
// @Description Returns the aggregate housing figures visible to the user.
// @Tags statistics
// @Produce  json
// @Success 200 {object} domain.HousingStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 503 {object} ErrorResponse "Snapshots not loaded yet"
// @Security BearerAuth
// @Router /statistics [get]
func (h *statisticsHandler) getHousingStats(c *gin.Context) {
	requester, ok := requesterFromContext(c, h.userService)
	if !ok {
		return
	}

	stats, err := h.statsService.GetHousingStats(c.Request.Context(), requester)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getFermeStats godoc
// @Summary Per-ferme statistics
// @Description Returns occupancy figures per ferme.
// @Tags statistics
// @Produce  json
// @Success 200 {array} domain.SiteStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 503 {object} ErrorResponse "Snapshots not loaded yet"
// @Security BearerAuth
// @Router /statistics/fermes [get]
func (h *statisticsHandler) getFermeStats(c *gin.Context) {
	requester, ok := requesterFromContext(c, h.userService)
	if !ok {
		return
	}

	stats, err := h.statsService.GetFermeStats(c.Request.Context(), requester)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getAgeDistribution godoc
// @Summary Worker age distribution
// @Description Returns active worker counts per age bucket.
// @Tags statistics
// @Produce  json
// @Success 200 {object} domain.AgeDistribution
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 503 {object} ErrorResponse "Snapshots not loaded yet"
// @Security BearerAuth
// @Router /statistics/age-distribution [get]
func (h *statisticsHandler) getAgeDistribution(c *gin.Context) {
	requester, ok := requesterFromContext(c, h.userService)
	if !ok {
		return
	}

	dist, err := h.statsService.GetAgeDistribution(c.Request.Context(), requester)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}
