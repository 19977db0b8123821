package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// roomHandler handles HTTP requests related to rooms.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

// newRoomHandler creates a new roomHandler.
func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{roomService: rs}
}

// RegisterRoomRoutes registers routes related to rooms and their occupants.
func RegisterRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.GET("", h.listRooms)
		rooms.GET("/:room_id", h.getRoom)
		rooms.PUT("/:room_id", h.updateRoom)
		rooms.DELETE("/:room_id", h.deleteRoom)

		rooms.POST("/:room_id/occupants", h.addOccupant)
		rooms.DELETE("/:room_id/occupants/:national_id", h.removeOccupant)
	}
}

// createRoom godoc
// @Summary Create a new room
// @Description Creates a room and refreshes the owning ferme's capacity counters.
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Room already exists"
// @Security BearerAuth
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	logger := loggerFrom(c)
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// listRooms godoc
// @Summary List rooms
// @Description Retrieves rooms, optionally filtered by ferme and gender.
// @Tags rooms
// @Produce  json
// @Param   fermeID query string false "Ferme ID"
// @Param   gender query string false "Room gender (men or women)"
// @Success 200 {object} dto.ListRoomsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	var params dto.ListRoomsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRoomsResponse(rooms))
}

// getRoom godoc
// @Summary Get a room
// @Description Retrieves a single room by ID.
// @Tags rooms
// @Produce  json
// @Param   room_id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} ErrorResponse "Room not found"
// @Security BearerAuth
// @Router /rooms/{room_id} [get]
func (h *roomHandler) getRoom(c *gin.Context) {
	room, err := h.roomService.GetRoomByID(c.Request.Context(), c.Param("room_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// updateRoom godoc
// @Summary Update a room
// @Description Updates a room. A capacity below the room's current occupancy
// @Description is rejected without any write. When the room write succeeds but
// @Description the ferme counter refresh fails, the response carries a warning
// @Description and the updated room.
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room_id path string true "Room ID"
// @Param   room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.UpdateRoomResponse
// @Failure 400 {object} ErrorResponse "Capacity below occupancy"
// @Failure 404 {object} ErrorResponse "Room not found"
// @Security BearerAuth
// @Router /rooms/{room_id} [put]
func (h *roomHandler) updateRoom(c *gin.Context) {
	logger := loggerFrom(c)
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	room, recalcErr, err := h.roomService.UpdateRoom(c.Request.Context(), c.Param("room_id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := dto.UpdateRoomResponse{Room: dto.ToRoomResponse(room)}
	if recalcErr != nil {
		resp.Warning = "room updated, but ferme capacity recalculation failed"
	}
	c.JSON(http.StatusOK, resp)
}

// deleteRoom godoc
// @Summary Delete a room
// @Description Deletes a room and refreshes the ferme's capacity counters.
// @Tags rooms
// @Produce  json
// @Param   room_id path string true "Room ID"
// @Success 204 "Room deleted"
// @Failure 500 {object} ErrorResponse "Failed to delete room"
// @Security BearerAuth
// @Router /rooms/{room_id} [delete]
func (h *roomHandler) deleteRoom(c *gin.Context) {
	if err := h.roomService.DeleteRoom(c.Request.Context(), c.Param("room_id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addOccupant godoc
// @Summary House a worker in a room
// @Description Adds a worker to the room's occupant list and mirrors the
// @Description assignment on the worker record.
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room_id path string true "Room ID"
// @Param   occupant body dto.AddOccupantRequest true "Worker to house"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse "Gender mismatch"
// @Failure 409 {object} ErrorResponse "Room is full"
// @Security BearerAuth
// @Router /rooms/{room_id}/occupants [post]
func (h *roomHandler) addOccupant(c *gin.Context) {
	logger := loggerFrom(c)
	var req dto.AddOccupantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addOccupant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	room, err := h.roomService.AddOccupant(c.Request.Context(), c.Param("room_id"), req.WorkerID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// removeOccupant godoc
// @Summary Remove a worker from a room
// @Description Removes the occupant with the given national id from the
// @Description room's occupant list. Removing one that is not housed in the
// @Description room is a no-op.
// @Tags rooms
// @Produce  json
// @Param   room_id path string true "Room ID"
// @Param   national_id path string true "Worker national ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} ErrorResponse "Room not found"
// @Security BearerAuth
// @Router /rooms/{room_id}/occupants/{national_id} [delete]
func (h *roomHandler) removeOccupant(c *gin.Context) {
	room, err := h.roomService.RemoveOccupant(c.Request.Context(), c.Param("room_id"), c.Param("national_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}
