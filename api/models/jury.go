package models

import (
	"time"

	"github.com/frontiertower/floorfinder-sub000/ratings"
	"github.com/frontiertower/floorfinder-sub000/scoring"
)

type OpenSessionRequest struct {
	JudgeID string `json:"judgeId" binding:"required"`
}

type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	JudgeID   string    `json:"judgeId"`
	OpenedAt  time.Time `json:"openedAt"`
}

// UpdateFieldRequest changes one field. Score is read for dimension fields,
// Text for track, addOnTrack and notes.
type UpdateFieldRequest struct {
	Field string  `json:"field" binding:"required"`
	Score *int    `json:"score"`
	Text  *string `json:"text"`
}

type TeamResponse struct {
	scoring.Team
	FloorLevel int `json:"floorLevel"`
}

type RatingResponse struct {
	Rating  scoring.Rating         `json:"rating"`
	Mode    ratings.PersistMode    `json:"mode"`
	Enabled map[scoring.Field]bool `json:"enabled"`
}

type JudgeRowsResponse struct {
	JudgeID string              `json:"judgeId"`
	Mode    ratings.PersistMode `json:"mode"`
	Rows    []scoring.Row       `json:"rows"`
}

type ModeResponse struct {
	Mode    ratings.PersistMode `json:"mode"`
	Message string              `json:"message,omitempty"`
}

func TransformTeam(t scoring.Team) TeamResponse {
	return TeamResponse{Team: t, FloorLevel: t.FloorLevel()}
}

func TransformSession(s *ratings.Session) SessionResponse {
	return SessionResponse{
		SessionID: s.ID,
		JudgeID:   s.JudgeID,
		OpenedAt:  s.OpenedAt,
	}
}

// TransformRating adds which dimensions currently accept input.
func TransformRating(r scoring.Rating, res ratings.Result, rules scoring.Rules) RatingResponse {
	enabled := make(map[scoring.Field]bool, len(rules.Dimensions()))
	for _, d := range rules.Dimensions() {
		enabled[scoring.Field(d)] = scoring.FieldEnabled(r, scoring.Field(d))
	}
	return RatingResponse{Rating: r, Mode: res.Mode, Enabled: enabled}
}

// ToFieldUpdate maps the request onto a scoring update.
func (r UpdateFieldRequest) ToFieldUpdate() scoring.FieldUpdate {
	upd := scoring.FieldUpdate{Field: scoring.Field(r.Field)}
	if r.Score != nil {
		upd.Score = *r.Score
	}
	if r.Text != nil {
		upd.Text = *r.Text
	}
	return upd
}

type DimensionResponse struct {
	Key          scoring.Dimension `json:"key"`
	Label        string            `json:"label"`
	TrackKeyword string            `json:"trackKeyword,omitempty"`
}

type ResetResponse struct {
	Reset  []string `json:"reset"`
	Failed []string `json:"failed,omitempty"`
}

func TransformDimensions(rules scoring.Rules) []DimensionResponse {
	out := make([]DimensionResponse, 0, len(rules.Dimensions()))
	for _, d := range rules.Dimensions() {
		keyword, _ := d.TrackKeyword()
		out = append(out, DimensionResponse{Key: d, Label: d.Label(), TrackKeyword: keyword})
	}
	return out
}
