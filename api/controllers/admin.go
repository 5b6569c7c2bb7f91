package controllers

import (
	"net/http"

	"github.com/frontiertower/floorfinder-sub000/api/models"
	"github.com/frontiertower/floorfinder-sub000/api/transport"
	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/frontiertower/floorfinder-sub000/ratings"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	service *ratings.Service
}

func NewAdminController(service *ratings.Service) *AdminController {
	return &AdminController{
		service: service,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/sessions", c.listSessions)
	group.DELETE("/sessions/:session", c.closeSession)
	group.POST("/ratings/reset", c.resetRatings)
	group.GET("/dimensions", c.listDimensions)
}

// @Security AdminToken
// listSessions godoc
// @Summary List all open judge sessions
// @Tags admin
// @Produce json
// @Success 200 {array} models.SessionResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/sessions [get]
func (c *AdminController) listSessions(g *gin.Context) {
	sessions, err := c.service.Sessions(g.Request.Context())
	if err != nil {
		writeError(g, err)
		return
	}
	out := make([]models.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, models.TransformSession(s))
	}

	logging.Log.Infof("ADMIN: listed %d sessions", len(out))
	g.JSON(http.StatusOK, out)
}

// @Security AdminToken
// closeSession godoc
// @Summary Close any judge session
// @Tags admin
// @Produce json
// @Param session path string true "Session ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/admin/sessions/{session} [delete]
func (c *AdminController) closeSession(g *gin.Context) {
	id := g.Param("session")
	if err := c.service.CloseSession(g.Request.Context(), id); err != nil {
		logging.Log.Warnf("ADMIN: could not close session %s: %v", id, err)
		writeError(g, err)
		return
	}

	logging.Log.Infof("ADMIN: closed session %s", id)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "session closed"})
}

// @Security AdminToken
// resetRatings godoc
// @Summary Delete the ratings of every judge
// @Description Judges are found in the store, so judges without an open session are reset too
// @Tags admin
// @Produce json
// @Success 200 {object} models.ResetResponse
// @Failure 500 {object} models.ResetResponse
// @Router /api/admin/ratings/reset [post]
func (c *AdminController) resetRatings(g *gin.Context) {
	reset, failed, err := c.service.ResetRatings(g.Request.Context())
	if err != nil {
		writeError(g, err)
		return
	}
	if reset == nil {
		reset = []string{}
	}

	status := http.StatusOK
	if len(failed) > 0 {
		status = http.StatusInternalServerError
	}
	logging.Log.Infof("ADMIN: reset ratings of %d judges", len(reset))
	g.JSON(status, models.ResetResponse{Reset: reset, Failed: failed})
}

// @Security AdminToken
// listDimensions godoc
// @Summary List the scored dimensions and the track keyword gating each
// @Tags admin
// @Produce json
// @Success 200 {array} models.DimensionResponse
// @Router /api/admin/dimensions [get]
func (c *AdminController) listDimensions(g *gin.Context) {
	dims := models.TransformDimensions(c.service.Rules())
	logging.Log.Infof("ADMIN: listed %d dimensions", len(dims))
	g.JSON(http.StatusOK, dims)
}
