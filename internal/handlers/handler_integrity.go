package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
)

// integrityHandler exposes the housing consistency checker.
type integrityHandler struct {
	integrityService portssvc.IntegritySvcFacade
}

// registerIntegrityRoutes registers the integrity check routes.
func registerIntegrityRoutes(rg *gin.RouterGroup, integrityService portssvc.IntegritySvcFacade) {
	h := &integrityHandler{integrityService: integrityService}

	integrity := rg.Group("/integrity")
	{
		integrity.GET("/housing", h.checkHousing)
	}
}

// checkHousing godoc
// @Summary Housing integrity check
// @Description Cross-checks room occupant lists against worker room
// @Description assignments and reports every discrepancy found. Nothing is
// @Description repaired automatically.
// @Tags integrity
// @Produce  json
// @Success 200 {object} domain.IntegrityReport
// @Failure 500 {object} ErrorResponse "Check failed"
// @Security BearerAuth
// @Router /integrity/housing [get]
func (h *integrityHandler) checkHousing(c *gin.Context) {
	report, err := h.integrityService.CheckHousing(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
