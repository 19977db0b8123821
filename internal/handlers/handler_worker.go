package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// workerHandler handles HTTP requests related to workers.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
	userService   portssvc.UserReaderSvc
}

// newWorkerHandler creates a new workerHandler.
func newWorkerHandler(ws portssvc.WorkerSvcFacade, us portssvc.UserReaderSvc) *workerHandler {
	return &workerHandler{
		workerService: ws,
		userService:   us,
	}
}

// registerWorkerRoutes registers routes related to workers.
func registerWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade, userService portssvc.UserReaderSvc) {
	h := newWorkerHandler(workerService, userService)

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("", h.listWorkers)
		workers.GET("/export", h.exportWorkers)
		workers.GET("/:worker_id", h.getWorker)
		workers.PUT("/:worker_id", h.updateWorker)
		workers.DELETE("/:worker_id", h.deleteWorker)
	}
}

// createWorker godoc
// @Summary Register a new worker
// @Description Registers a worker. The age field is always derived from the
// @Description birth year, whatever the request supplies.
// @Tags workers
// @Accept  json
// @Produce  json
// @Param   worker body dto.CreateWorkerRequest true "Worker details"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Ferme not found"
// @Security BearerAuth
// @Router /workers [post]
func (h *workerHandler) createWorker(c *gin.Context) {
	logger := loggerFrom(c)
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

// listWorkers godoc
// @Summary List workers
// @Description Retrieves the workers visible to the authenticated user,
// @Description filtered by ferme, status, gender, or a free-text search.
// @Tags workers
// @Produce  json
// @Param   fermeID query string false "Ferme ID"
// @Param   status query string false "Worker status (active or inactive)"
// @Param   gender query string false "Worker gender (man or woman)"
// @Param   search query string false "Matches name, national ID, or phone"
// @Success 200 {object} dto.ListWorkersResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /workers [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	var params dto.ListWorkersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requester, ok := requesterFromContext(c, h.userService)
	if !ok {
		return
	}

	workers, err := h.workerService.ListWorkers(c.Request.Context(), requester, params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkersResponse(workers))
}

// exportWorkers godoc
// @Summary Export workers as a spreadsheet
// @Description Renders the visible workers as an xlsx file.
// @Tags workers
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   fermeID query string false "Ferme ID"
// @Param   status query string false "Worker status (active or inactive)"
// @Param   gender query string false "Worker gender (man or woman)"
// @Param   search query string false "Matches name, national ID, or phone"
// @Success 200 {file} binary "xlsx file"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /workers/export [get]
func (h *workerHandler) exportWorkers(c *gin.Context) {
	var params dto.ListWorkersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requester, ok := requesterFromContext(c, h.userService)
	if !ok {
		return
	}

	filename, content, err := h.workerService.ExportWorkers(c.Request.Context(), requester, params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// getWorker godoc
// @Summary Get a worker
// @Description Retrieves a single worker by ID.
// @Tags workers
// @Produce  json
// @Param   worker_id path string true "Worker ID"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /workers/{worker_id} [get]
func (h *workerHandler) getWorker(c *gin.Context) {
	worker, err := h.workerService.GetWorkerByID(c.Request.Context(), c.Param("worker_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// updateWorker godoc
// @Summary Update a worker
// @Description Updates a worker. Changing the birth year rederives the age;
// @Description marking the worker inactive records exit details and frees the
// @Description room assignment.
// @Tags workers
// @Accept  json
// @Produce  json
// @Param   worker_id path string true "Worker ID"
// @Param   worker body dto.UpdateWorkerRequest true "Fields to update"
// @Success 200 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /workers/{worker_id} [put]
func (h *workerHandler) updateWorker(c *gin.Context) {
	logger := loggerFrom(c)
	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), c.Param("worker_id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// deleteWorker godoc
// @Summary Delete a worker
// @Description Deletes a worker. Deleting an already-deleted worker succeeds.
// @Tags workers
// @Produce  json
// @Param   worker_id path string true "Worker ID"
// @Success 204 "Worker deleted"
// @Failure 500 {object} ErrorResponse "Failed to delete worker"
// @Security BearerAuth
// @Router /workers/{worker_id} [delete]
func (h *workerHandler) deleteWorker(c *gin.Context) {
	if err := h.workerService.DeleteWorker(c.Request.Context(), c.Param("worker_id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
