package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// fermeHandler handles HTTP requests related to fermes.
type fermeHandler struct {
	fermeService portssvc.FermeSvcFacade
	userService  portssvc.UserReaderSvc
}

// newFermeHandler creates a new fermeHandler.
func newFermeHandler(fs portssvc.FermeSvcFacade, us portssvc.UserReaderSvc) *fermeHandler {
	return &fermeHandler{
		fermeService: fs,
		userService:  us,
	}
}

// superAdminFromContext resolves the requester and rejects with 403 unless
// they hold the superadmin role. Ferme management is superadmin-only; regular
// admins only read the fermes they are assigned to.
func (h *fermeHandler) superAdminFromContext(c *gin.Context) bool {
	requester, ok := requesterFromContext(c, h.userService)
	if !ok {
		return false
	}
	if !requester.IsSuperAdmin() {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Superadmin role required"})
		return false
	}
	return true
}

// RegisterFermeRoutes registers routes related to fermes.
func RegisterFermeRoutes(rg *gin.RouterGroup, fermeService portssvc.FermeSvcFacade, userService portssvc.UserReaderSvc) {
	h := newFermeHandler(fermeService, userService)

	fermes := rg.Group("/fermes")
	{
		fermes.POST("", h.createFerme)
		fermes.GET("", h.listFermes)
		fermes.GET("/:ferme_id", h.getFerme)
		fermes.PUT("/:ferme_id", h.updateFerme)
		fermes.DELETE("/:ferme_id", h.deleteFerme)
		fermes.POST("/:ferme_id/recalculate", h.recalculateFerme)
	}
}

// createFerme godoc
// @Summary Create a new ferme
// @Description Creates a ferme and, when autoCreateRooms is set, its dormitory rooms.
// @Tags fermes
// @Accept  json
// @Produce  json
// @Param   ferme body dto.CreateFermeRequest true "Ferme details"
// @Success 201 {object} dto.FermeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Superadmin role required"
// @Failure 500 {object} ErrorResponse "Failed to create ferme"
// @Security BearerAuth
// @Router /fermes [post]
func (h *fermeHandler) createFerme(c *gin.Context) {
	if !h.superAdminFromContext(c) {
		return
	}

	logger := loggerFrom(c)
	var req dto.CreateFermeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createFerme", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	site, _, err := h.fermeService.CreateFerme(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFermeResponse(site))
}

// listFermes godoc
// @Summary List fermes
// @Description Retrieves the fermes visible to the authenticated user.
// @Tags fermes
// @Produce  json
// @Success 200 {object} dto.ListFermesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list fermes"
// @Security BearerAuth
// @Router /fermes [get]
func (h *fermeHandler) listFermes(c *gin.Context) {
	requester, ok := requesterFromContext(c, h.userService)
	if !ok {
		return
	}

	sites, err := h.fermeService.ListFermes(c.Request.Context(), requester)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListFermesResponse(sites))
}

// getFerme godoc
// @Summary Get a ferme
// @Description Retrieves a single ferme by ID.
// @Tags fermes
// @Produce  json
// @Param   ferme_id path string true "Ferme ID"
// @Success 200 {object} dto.FermeResponse
// @Failure 404 {object} ErrorResponse "Ferme not found"
// @Security BearerAuth
// @Router /fermes/{ferme_id} [get]
func (h *fermeHandler) getFerme(c *gin.Context) {
	site, err := h.fermeService.GetFermeByID(c.Request.Context(), c.Param("ferme_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFermeResponse(site))
}

// updateFerme godoc
// @Summary Update a ferme
// @Description Updates a ferme's name or admin assignments.
// @Tags fermes
// @Accept  json
// @Produce  json
// @Param   ferme_id path string true "Ferme ID"
// @Param   ferme body dto.UpdateFermeRequest true "Fields to update"
// @Success 200 {object} dto.FermeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Superadmin role required"
// @Failure 404 {object} ErrorResponse "Ferme not found"
// @Security BearerAuth
// @Router /fermes/{ferme_id} [put]
func (h *fermeHandler) updateFerme(c *gin.Context) {
	if !h.superAdminFromContext(c) {
		return
	}

	logger := loggerFrom(c)
	var req dto.UpdateFermeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateFerme", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	site, err := h.fermeService.UpdateFerme(c.Request.Context(), c.Param("ferme_id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFermeResponse(site))
}

// deleteFerme godoc
// @Summary Delete a ferme
// @Description Deletes a ferme together with all of its rooms. If any room
// @Description deletion fails the cascade stops and the ferme is kept; the
// @Description whole cascade can safely be retried.
// @Tags fermes
// @Produce  json
// @Param   ferme_id path string true "Ferme ID"
// @Success 204 "Ferme deleted"
// @Failure 403 {object} ErrorResponse "Superadmin role required"
// @Failure 409 {object} ErrorResponse "Cascade stopped partway"
// @Security BearerAuth
// @Router /fermes/{ferme_id} [delete]
func (h *fermeHandler) deleteFerme(c *gin.Context) {
	if !h.superAdminFromContext(c) {
		return
	}

	if err := h.fermeService.DeleteFermeCascade(c.Request.Context(), c.Param("ferme_id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// recalculateFerme godoc
// @Summary Recalculate ferme capacity
// @Description Rescans the ferme's rooms and rewrites its room and capacity counters.
// @Tags fermes
// @Produce  json
// @Param   ferme_id path string true "Ferme ID"
// @Success 200 {object} dto.RecalculateResponse
// @Failure 403 {object} ErrorResponse "Superadmin role required"
// @Failure 404 {object} ErrorResponse "Ferme not found"
// @Failure 500 {object} ErrorResponse "Recalculation failed"
// @Security BearerAuth
// @Router /fermes/{ferme_id}/recalculate [post]
func (h *fermeHandler) recalculateFerme(c *gin.Context) {
	if !h.superAdminFromContext(c) {
		return
	}

	site, err := h.fermeService.RecalculateCapacity(c.Request.Context(), c.Param("ferme_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RecalculateResponse{Ferme: dto.ToFermeResponse(site)})
}
