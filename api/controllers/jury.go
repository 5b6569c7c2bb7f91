package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/frontiertower/floorfinder-sub000/api/models"
	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/frontiertower/floorfinder-sub000/ratings"
	"github.com/frontiertower/floorfinder-sub000/scoring"
	"github.com/frontiertower/floorfinder-sub000/storage"
	"github.com/gin-gonic/gin"
)

const (
	maxImportBytes         = 4 << 20
	persistModeHeader      = "X-Persist-Mode"
	judgesIncompleteHeader = "X-Judges-Incomplete"
)

type JuryController struct {
	service *ratings.Service
}

func NewJuryController(service *ratings.Service) *JuryController {
	return &JuryController{service: service}
}

func (c *JuryController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/jury")

	group.GET("/teams", c.listTeams)
	group.GET("/judges", c.listJudges)
	group.GET("/aggregate", c.aggregate)
	group.GET("/aggregate/export.csv", c.exportAggregateCSV)

	group.POST("/sessions", c.openSession)
	group.DELETE("/sessions/:session", c.closeSession)
	group.GET("/sessions/:session/ratings", c.getRatings)
	group.PUT("/sessions/:session/ratings/:teamKey", c.updateField)
	group.DELETE("/sessions/:session/ratings", c.clearRatings)
	group.GET("/sessions/:session/export.json", c.exportJSON)
	group.GET("/sessions/:session/export.csv", c.exportCSV)
	group.POST("/sessions/:session/import", c.importJSON)
}

// listTeams godoc
// @Summary List the judged teams
// @Description Teams derived from the room directory, one per team name and floor
// @Tags jury
// @Produce json
// @Param sort query string false "teamName, projectName, teamNumber, roomNumber, floor"
// @Param dir query string false "asc or desc"
// @Success 200 {array} models.TeamResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/teams [get]
func (c *JuryController) listTeams(g *gin.Context) {
	dir, err := c.service.Directory(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load rooms"})
		return
	}

	rows := scoring.JudgeRows(dir.Teams(), scoring.RatingSet{})
	scoring.SortRows(rows, scoring.SortField(g.Query("sort")), scoring.ParseDirection(g.Query("dir")))

	teams := make([]models.TeamResponse, 0, len(rows))
	for _, r := range rows {
		teams = append(teams, models.TransformTeam(r.Team))
	}
	g.JSON(http.StatusOK, teams)
}

// listJudges godoc
// @Summary List the judges included in the aggregate
// @Description When the store cannot be listed, judges known only from it are missing and X-Judges-Incomplete is set
// @Tags jury
// @Produce json
// @Success 200 {array} string
// @Router /api/jury/judges [get]
func (c *JuryController) listJudges(g *gin.Context) {
	judges, err := c.service.Judges(g.Request.Context())
	if err != nil {
		logging.Log.Warnf("JURY: listing judges without the store: %v", err)
		g.Header(judgesIncompleteHeader, "true")
	}
	g.JSON(http.StatusOK, judges)
}

// openSession godoc
// @Summary Open a judge session
// @Tags jury
// @Accept json
// @Produce json
// @Param request body models.OpenSessionRequest true "Judge"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/jury/sessions [post]
func (c *JuryController) openSession(g *gin.Context) {
	var req models.OpenSessionRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, judgeId is required"})
		return
	}

	session, err := c.service.OpenSession(g.Request.Context(), req.JudgeID)
	if err != nil {
		writeError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformSession(session))
}

// closeSession godoc
// @Summary Close a judge session
// @Description Ratings that were only kept locally because the store was unavailable are dropped
// @Tags jury
// @Produce json
// @Param session path string true "Session ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/jury/sessions/{session} [delete]
func (c *JuryController) closeSession(g *gin.Context) {
	if err := c.service.CloseSession(g.Request.Context(), g.Param("session")); err != nil {
		writeError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "session closed"})
}

// getRatings godoc
// @Summary List every team with the judge's rating
// @Tags jury
// @Produce json
// @Param session path string true "Session ID"
// @Param sort query string false "teamName, projectName, teamNumber, roomNumber, floor, total"
// @Param dir query string false "asc or desc"
// @Param track query string false "Only teams filed under this track"
// @Success 200 {object} models.JudgeRowsResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/sessions/{session}/ratings [get]
func (c *JuryController) getRatings(g *gin.Context) {
	session, ok := c.session(g)
	if !ok {
		return
	}

	rows, res, err := session.Rows(g.Request.Context(), queryFrom(g))
	if err != nil {
		writeError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.JudgeRowsResponse{JudgeID: session.JudgeID, Mode: res.Mode, Rows: rows})
}

// updateField godoc
// @Summary Change one field of a rating
// @Description Scores use "score" (0 clears, 1..5), track, addOnTrack and notes use "text"
// @Tags jury
// @Accept json
// @Produce json
// @Param session path string true "Session ID"
// @Param teamKey path string true "Team key"
// @Param request body models.UpdateFieldRequest true "Field update"
// @Success 200 {object} models.RatingResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/sessions/{session}/ratings/{teamKey} [put]
func (c *JuryController) updateField(g *gin.Context) {
	session, ok := c.session(g)
	if !ok {
		return
	}

	var req models.UpdateFieldRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, field is required"})
		return
	}

	rules := c.service.Rules()
	field := scoring.Field(req.Field)
	if rules.IsDimension(field) && req.Score == nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("field %s needs a score", req.Field)})
		return
	}
	if !rules.IsDimension(field) && rules.IsField(field) && req.Text == nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("field %s needs a text", req.Field)})
		return
	}

	teamKey := g.Param("teamKey")
	rating, res, err := session.UpdateField(g.Request.Context(), teamKey, req.ToFieldUpdate())
	if err != nil {
		logging.Log.Warnf("JURY: update of %s/%s by judge %s failed: %v", teamKey, req.Field, session.JudgeID, err)
		writeError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformRating(rating, res, rules))
}

// clearRatings godoc
// @Summary Delete all ratings of the judge
// @Tags jury
// @Produce json
// @Param session path string true "Session ID"
// @Success 200 {object} models.ModeResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/sessions/{session}/ratings [delete]
func (c *JuryController) clearRatings(g *gin.Context) {
	session, ok := c.session(g)
	if !ok {
		return
	}

	res, err := session.Clear(g.Request.Context())
	if err != nil {
		writeError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.ModeResponse{Mode: res.Mode, Message: "ratings cleared"})
}

// exportJSON godoc
// @Summary Download the judge's ratings as a backup file
// @Tags jury
// @Produce json
// @Param session path string true "Session ID"
// @Success 200 {object} scoring.Snapshot
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/sessions/{session}/export.json [get]
func (c *JuryController) exportJSON(g *gin.Context) {
	session, ok := c.session(g)
	if !ok {
		return
	}

	data, res, err := session.ExportJSON(g.Request.Context())
	if err != nil {
		writeError(g, err)
		return
	}
	g.Header(persistModeHeader, string(res.Mode))
	g.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="ratings-%s.json"`, session.JudgeID))
	g.Data(http.StatusOK, "application/json", data)
}

// importJSON godoc
// @Summary Replace the judge's ratings with a backup file
// @Description Ratings missing from the file are removed. Malformed entries are skipped and reported.
// @Tags jury
// @Accept json
// @Produce json
// @Param session path string true "Session ID"
// @Param file body scoring.Snapshot true "Backup file"
// @Success 200 {object} ratings.ImportResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/sessions/{session}/import [post]
func (c *JuryController) importJSON(g *gin.Context) {
	session, ok := c.session(g)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(g.Request.Body, maxImportBytes))
	if err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "could not read request body"})
		return
	}

	result, err := session.ImportJSON(g.Request.Context(), body)
	if err != nil {
		writeError(g, err)
		return
	}
	g.JSON(http.StatusOK, result)
}

// exportCSV godoc
// @Summary Download the judge's rated teams as CSV
// @Tags jury
// @Produce text/csv
// @Param session path string true "Session ID"
// @Param sort query string false "Sort field"
// @Param dir query string false "asc or desc"
// @Param track query string false "Only teams filed under this track"
// @Success 200 {string} string
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/sessions/{session}/export.csv [get]
func (c *JuryController) exportCSV(g *gin.Context) {
	session, ok := c.session(g)
	if !ok {
		return
	}

	var buf bytes.Buffer
	res, err := session.ExportCSV(g.Request.Context(), &buf, queryFrom(g))
	if err != nil {
		writeError(g, err)
		return
	}
	g.Header(persistModeHeader, string(res.Mode))
	g.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="ratings-%s.csv"`, session.JudgeID))
	g.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// aggregate godoc
// @Summary Combined ratings of all judges
// @Description Per-dimension averages over judges that scored the dimension, most common tracks and all notes
// @Tags jury
// @Produce json
// @Param sort query string false "Sort field"
// @Param dir query string false "asc or desc"
// @Param track query string false "Only teams whose most common track matches"
// @Success 200 {object} ratings.AggregateResult
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/aggregate [get]
func (c *JuryController) aggregate(g *gin.Context) {
	result, err := c.service.Aggregate(g.Request.Context(), queryFrom(g))
	if err != nil {
		writeError(g, err)
		return
	}
	g.JSON(http.StatusOK, result)
}

// exportAggregateCSV godoc
// @Summary Download the combined ratings as CSV
// @Tags jury
// @Produce text/csv
// @Param sort query string false "Sort field"
// @Param dir query string false "asc or desc"
// @Param track query string false "Only teams whose most common track matches"
// @Success 200 {string} string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/aggregate/export.csv [get]
func (c *JuryController) exportAggregateCSV(g *gin.Context) {
	result, err := c.service.Aggregate(g.Request.Context(), queryFrom(g))
	if err != nil {
		writeError(g, err)
		return
	}

	var buf bytes.Buffer
	if err := c.service.Rules().WriteCSV(&buf, result.Rows, scoring.ModeAggregate); err != nil {
		logging.Log.Errorf("JURY: failed to write aggregate csv: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not write csv"})
		return
	}
	if result.Partial {
		g.Header("X-Partial-Judges", fmt.Sprint(result.FailedJudges))
	}
	g.Header("Content-Disposition", `attachment; filename="ratings-aggregate.csv"`)
	g.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (c *JuryController) session(g *gin.Context) (*ratings.Session, bool) {
	session, err := c.service.Session(g.Request.Context(), g.Param("session"))
	if err != nil {
		writeError(g, err)
		return nil, false
	}
	return session, true
}

func queryFrom(g *gin.Context) ratings.Query {
	return ratings.Query{
		SortField: scoring.SortField(g.Query("sort")),
		Direction: scoring.ParseDirection(g.Query("dir")),
		Track:     g.Query("track"),
	}
}

func writeError(g *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ratings.ErrSessionNotFound), errors.Is(err, ratings.ErrUnknownTeam):
		status = http.StatusNotFound
	case errors.Is(err, ratings.ErrSessionClosed):
		status = http.StatusGone
	case errors.Is(err, ratings.ErrUnknownJudge):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, scoring.ErrUnknownField),
		errors.Is(err, scoring.ErrScoreOutOfRange),
		errors.Is(err, scoring.ErrFieldDisabled),
		errors.Is(err, scoring.ErrMissingTeam),
		errors.Is(err, scoring.ErrMissingJudge),
		errors.Is(err, scoring.ErrInvalidRating),
		errors.Is(err, scoring.ErrMalformedImport):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		logging.Log.Errorf("JURY: request %s failed: %v", g.Request.URL.Path, err)
	}
	g.JSON(status, models.ErrorResponse{Error: err.Error()})
}
