package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/frontiertower/floorfinder-sub000/api/models"
	"github.com/frontiertower/floorfinder-sub000/api/transport"
	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/frontiertower/floorfinder-sub000/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomController struct {
	storage storage.RoomStorage
}

func NewRoomController(s storage.RoomStorage) *RoomController {
	return &RoomController{storage: s}
}

func (c *RoomController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/rooms")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all rooms
// @Tags Rooms
// @Produce json
// @Param floor query string false "Only rooms on this floor"
// @Success 200 {array} models.RoomResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/rooms [get]
func (c *RoomController) getAll(g *gin.Context) {
	rooms, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ROOM: failed to get all rooms: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// Same order for every floor plan client
	sort.SliceStable(rooms, func(i, j int) bool {
		if rooms[i].FloorID != rooms[j].FloorID {
			return rooms[i].FloorID < rooms[j].FloorID
		}
		return rooms[i].ID < rooms[j].ID
	})

	floor := g.Query("floor")
	responses := make([]models.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		if floor != "" && r.FloorID != floor {
			continue
		}
		responses = append(responses, models.TransformRoomFromStorage(r))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a room by ID
// @Tags Rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} models.RoomResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/rooms/{id} [get]
func (c *RoomController) get(g *gin.Context) {
	id := g.Param("id")
	room, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("ROOM: failed to get room: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	if room == nil {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "room not found"})
		return
	}
	g.JSON(http.StatusOK, models.TransformRoomFromStorage(room))
}

// @Security AdminToken
// @Summary Create a room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param room body models.RoomCreateRequest true "Room object"
// @Success 200 {object} models.RoomResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/rooms [post]
func (c *RoomController) create(g *gin.Context) {
	var req models.RoomCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("ROOM: invalid create room request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, name and floorId are required"})
		return
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}
	room := req.ToStorage(id)

	if err := c.storage.Create(g.Request.Context(), room); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			logging.Log.Warnf("ROOM: room with ID %s already exists", id)
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "room with ID already exists"})
			return
		}

		logging.Log.Errorf("ROOM: failed to create room: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	logging.Log.Infof("ROOM: created room %s on floor %s", room.ID, room.FloorID)
	g.JSON(http.StatusOK, models.TransformRoomFromStorage(room))
}

// @Security AdminToken
// @Summary Update an existing room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param room body models.RoomUpdateRequest true "Room update object"
// @Success 200 {object} models.RoomResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/rooms/{id} [put]
func (c *RoomController) update(g *gin.Context) {
	id := g.Param("id")

	var req models.RoomUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("ROOM: invalid update room request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, name and floorId are required"})
		return
	}

	room := req.ToStorage(id)
	if err := c.storage.Update(g.Request.Context(), room); err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "room not found"})
			return
		}
		logging.Log.Errorf("ROOM: failed to update room: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TransformRoomFromStorage(room))
}

// @Security AdminToken
// @Summary Delete a room
// @Tags Rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/rooms/{id} [delete]
func (c *RoomController) delete(g *gin.Context) {
	id := g.Param("id")
	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("ROOM: failed to delete room: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "room deleted"})
}
