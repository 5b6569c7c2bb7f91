package scoring

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Rating is one judge's assessment of one team. The team fields are copied
// when the rating is first created and are not refreshed from later room
// edits.
type Rating struct {
	TeamKey     string `json:"teamKey" validate:"required"`
	JudgeID     string `json:"judgeId" validate:"required"`
	TeamName    string `json:"teamName"`
	TeamNumber  string `json:"teamNumber"`
	ProjectName string `json:"projectName"`
	RoomNumber  string `json:"roomNumber"`
	FloorID     string `json:"floorId"`

	Track      string `json:"track"`
	AddOnTrack string `json:"addOnTrack"`

	Concept                int `json:"concept" validate:"min=0,max=5"`
	Quality                int `json:"quality" validate:"min=0,max=5"`
	Implementation         int `json:"implementation" validate:"min=0,max=5"`
	PassthroughCameraAPI   int `json:"passthroughCameraAPI" validate:"min=0,max=5"`
	ImmersiveEntertainment int `json:"immersiveEntertainment" validate:"min=0,max=5"`
	HandTracking           int `json:"handTracking" validate:"min=0,max=5"`
	MRAndVR                int `json:"mrAndVR,omitempty" validate:"min=0,max=5"`
	ProjectUpgrade         int `json:"projectUpgrade,omitempty" validate:"min=0,max=5"`

	Notes       string    `json:"notes"`
	Total       float64   `json:"total"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// RatingSet is everything one judge has rated, keyed by team key. It is
// stored and replaced as a single record.
type RatingSet struct {
	JudgeID string
	Ratings map[string]Rating
	// Version is the store version the set was read at; 0 when never stored.
	Version int64
}

func NewRatingSet(judgeID string) RatingSet {
	return RatingSet{JudgeID: judgeID, Ratings: map[string]Rating{}}
}

// Clone returns a copy whose map can be changed without touching s.
func (s RatingSet) Clone() RatingSet {
	out := RatingSet{JudgeID: s.JudgeID, Version: s.Version, Ratings: make(map[string]Rating, len(s.Ratings))}
	for k, v := range s.Ratings {
		out.Ratings[k] = v
	}
	return out
}

func (s RatingSet) Get(teamKey string) (Rating, bool) {
	r, ok := s.Ratings[teamKey]
	return r, ok
}

// FieldUpdate changes one field. Score is used for dimensions, Text for the
// track and notes fields.
type FieldUpdate struct {
	Field Field
	Score int
	Text  string
}

func (r *Rating) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRating, err)
	}
	return nil
}

// Score returns the stored value of d.
func (r Rating) Score(d Dimension) int {
	if p := r.scoreRef(d); p != nil {
		return *p
	}
	return 0
}

func (r *Rating) scoreRef(d Dimension) *int {
	switch d {
	case Concept:
		return &r.Concept
	case Quality:
		return &r.Quality
	case Implementation:
		return &r.Implementation
	case PassthroughCameraAPI:
		return &r.PassthroughCameraAPI
	case ImmersiveEntertainment:
		return &r.ImmersiveEntertainment
	case HandTracking:
		return &r.HandTracking
	case MRAndVR:
		return &r.MRAndVR
	case ProjectUpgrade:
		return &r.ProjectUpgrade
	}
	return nil
}

// Total is the mean of the strictly positive dimension scores, 0 when none
// is rated.
func (r Rules) Total(rating Rating) float64 {
	sum, n := 0, 0
	for _, d := range r.Dimensions() {
		if v := rating.Score(d); v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// HasInput reports whether any score, track or note has been entered.
func (r Rules) HasInput(rating Rating) bool {
	if rating.Track != "" || rating.AddOnTrack != "" || rating.Notes != "" {
		return true
	}
	for _, d := range r.Dimensions() {
		if rating.Score(d) > 0 {
			return true
		}
	}
	return false
}

// NewRating creates the zero rating of judgeID for team.
func NewRating(judgeID string, team Team) Rating {
	return Rating{
		TeamKey:     team.Key,
		JudgeID:     judgeID,
		TeamName:    team.TeamName,
		TeamNumber:  team.TeamNumber,
		ProjectName: team.ProjectName,
		RoomNumber:  team.RoomNumber,
		FloorID:     team.FloorID,
	}
}

// UpdateField applies one field change to the rating of team and returns the
// new set. The input set is left untouched. The rating is created from the
// team descriptor when the judge has not rated the team yet.
func (r Rules) UpdateField(set RatingSet, team Team, upd FieldUpdate) (RatingSet, error) {
	if team.Key == "" {
		return set, ErrMissingTeam
	}
	if set.JudgeID == "" {
		return set, ErrMissingJudge
	}
	if !r.IsField(upd.Field) {
		return set, fmt.Errorf("%w: %q", ErrUnknownField, upd.Field)
	}

	rating, ok := set.Ratings[team.Key]
	if !ok {
		rating = NewRating(set.JudgeID, team)
	}

	switch upd.Field {
	case FieldTrack:
		rating.Track = upd.Text
	case FieldAddOnTrack:
		rating.AddOnTrack = upd.Text
	case FieldNotes:
		rating.Notes = upd.Text
	default:
		if upd.Score < 0 || upd.Score > MaxScore {
			return set, fmt.Errorf("%w: %s=%d, want 0..%d", ErrScoreOutOfRange, upd.Field, upd.Score, MaxScore)
		}
		if upd.Score > 0 && !FieldEnabled(rating, upd.Field) {
			return set, fmt.Errorf("%w: %s", ErrFieldDisabled, upd.Field)
		}
		*rating.scoreRef(Dimension(upd.Field)) = upd.Score
	}

	rating.Total = r.Total(rating)
	if err := rating.Validate(); err != nil {
		return set, err
	}

	out := set.Clone()
	out.Ratings[team.Key] = rating
	return out, nil
}
