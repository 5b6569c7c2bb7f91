package scoring

import (
	"strings"
)

// JudgeRatings is one judge's set as seen by the aggregation. Callers pass
// judges in a stable order; notes keep that order.
type JudgeRatings struct {
	JudgeID string
	Ratings map[string]Rating
}

type TrackSlot int

const (
	PrimaryTrack TrackSlot = iota
	AddOnTrack
)

type JudgeNote struct {
	JudgeID string `json:"judgeId"`
	Notes   string `json:"notes"`
}

// AggregateView combines every judge's rating of one team.
type AggregateView struct {
	TeamKey    string                `json:"teamKey"`
	Averages   map[Dimension]float64 `json:"averages"`
	Average    float64               `json:"average"`
	Track      string                `json:"track"`
	AddOnTrack string                `json:"addOnTrack"`
	Notes      []JudgeNote           `json:"notes"`
	JudgeCount int                   `json:"judgeCount"`
}

// Aggregate builds the view of teamKey across judges. Missing ratings and
// unrated dimensions never fail; they contribute nothing.
func (r Rules) Aggregate(teamKey string, judges []JudgeRatings) AggregateView {
	view := AggregateView{
		TeamKey:    teamKey,
		Averages:   make(map[Dimension]float64, len(r.Dimensions())),
		Average:    TeamAverage(teamKey, judges),
		Track:      MostCommonTrack(teamKey, PrimaryTrack, judges),
		AddOnTrack: MostCommonTrack(teamKey, AddOnTrack, judges),
		Notes:      AllNotes(teamKey, judges),
	}
	for _, d := range r.Dimensions() {
		view.Averages[d] = FieldAverage(teamKey, d, judges)
	}
	for _, j := range judges {
		if _, ok := j.Ratings[teamKey]; ok {
			view.JudgeCount++
		}
	}
	return view
}

// FieldAverage averages d over the judges that gave it a positive score.
func FieldAverage(teamKey string, d Dimension, judges []JudgeRatings) float64 {
	sum, n := 0, 0
	for _, j := range judges {
		rating, ok := j.Ratings[teamKey]
		if !ok {
			continue
		}
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

// TeamAverage averages the positive totals of all judges.
func TeamAverage(teamKey string, judges []JudgeRatings) float64 {
	sum, n := 0.0, 0
	for _, j := range judges {
		rating, ok := j.Ratings[teamKey]
		if !ok || rating.Total <= 0 {
			continue
		}
		sum += rating.Total
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MostCommonTrack returns the label chosen by most judges for the slot.
// Ties go to the lexicographically smallest label so the result does not
// depend on the order judges are read in.
func MostCommonTrack(teamKey string, slot TrackSlot, judges []JudgeRatings) string {
	counts := make(map[string]int)
	for _, j := range judges {
		rating, ok := j.Ratings[teamKey]
		if !ok {
			continue
		}
		label := rating.Track
		if slot == AddOnTrack {
			label = rating.AddOnTrack
		}
		if label == "" {
			continue
		}
		counts[label]++
	}

	best, bestCount := "", 0
	for label, n := range counts {
		if n > bestCount || (n == bestCount && label < best) {
			best, bestCount = label, n
		}
	}
	return best
}

// AllNotes collects the non-blank notes of every judge, trimmed.
func AllNotes(teamKey string, judges []JudgeRatings) []JudgeNote {
	var notes []JudgeNote
	for _, j := range judges {
		rating, ok := j.Ratings[teamKey]
		if !ok {
			continue
		}
		text := strings.TrimSpace(rating.Notes)
		if text == "" {
			continue
		}
		notes = append(notes, JudgeNote{JudgeID: j.JudgeID, Notes: text})
	}
	return notes
}

// NotesText joins the notes as "[judge] note | [judge] note".
func (v AggregateView) NotesText() string {
	parts := make([]string, 0, len(v.Notes))
	for _, n := range v.Notes {
		parts = append(parts, "["+n.JudgeID+"] "+n.Notes)
	}
	return strings.Join(parts, " | ")
}
