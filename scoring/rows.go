package scoring

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Mode string

const (
	ModeJudge     Mode = "judge"
	ModeAggregate Mode = "aggregate"
)

type SortField string

const (
	SortTeamName    SortField = "teamName"
	SortProjectName SortField = "projectName"
	SortTeamNumber  SortField = "teamNumber"
	SortRoomNumber  SortField = "roomNumber"
	SortFloor       SortField = "floor"
	SortTotal       SortField = "total"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Descending)) {
		return Descending
	}
	return Ascending
}

// Row is one team in a listing, with either the judge's own rating or the
// aggregate view attached.
type Row struct {
	Team      Team           `json:"team"`
	Rating    *Rating        `json:"rating,omitempty"`
	Aggregate *AggregateView `json:"aggregate,omitempty"`
}

// Tracks returns the primary and add-on track the row is filed under.
func (r Row) Tracks() (string, string) {
	switch {
	case r.Aggregate != nil:
		return r.Aggregate.Track, r.Aggregate.AddOnTrack
	case r.Rating != nil:
		return r.Rating.Track, r.Rating.AddOnTrack
	}
	return "", ""
}

// Score is the judge's total or the aggregate average.
func (r Row) Score() float64 {
	switch {
	case r.Aggregate != nil:
		return r.Aggregate.Average
	case r.Rating != nil:
		return r.Rating.Total
	}
	return 0
}

// JudgeRows pairs every team with the judge's rating of it, if any.
func JudgeRows(teams []Team, set RatingSet) []Row {
	rows := make([]Row, 0, len(teams))
	for _, t := range teams {
		row := Row{Team: t}
		if rating, ok := set.Ratings[t.Key]; ok {
			row.Rating = &rating
		}
		rows = append(rows, row)
	}
	return rows
}

// AggregateRows pairs every team with its aggregate view.
func (r Rules) AggregateRows(teams []Team, judges []JudgeRatings) []Row {
	rows := make([]Row, 0, len(teams))
	for _, t := range teams {
		view := r.Aggregate(t.Key, judges)
		rows = append(rows, Row{Team: t, Aggregate: &view})
	}
	return rows
}

// SortRows sorts rows in place, keeping the relative order of equal rows.
// An unknown field orders by floor level, then team name.
func SortRows(rows []Row, field SortField, dir Direction) {
	col := collate.New(language.English)
	byName := func(a, b Row) int { return col.CompareString(a.Team.TeamName, b.Team.TeamName) }

	var cmp func(a, b Row) int
	switch field {
	case SortTeamName:
		cmp = byName
	case SortProjectName:
		cmp = func(a, b Row) int { return col.CompareString(a.Team.ProjectName, b.Team.ProjectName) }
	case SortTeamNumber:
		cmp = func(a, b Row) int { return compareInt(DigitRun(a.Team.TeamNumber), DigitRun(b.Team.TeamNumber)) }
	case SortRoomNumber:
		cmp = func(a, b Row) int { return compareInt(DigitRun(a.Team.RoomNumber), DigitRun(b.Team.RoomNumber)) }
	case SortFloor:
		cmp = func(a, b Row) int { return compareInt(a.Team.FloorLevel(), b.Team.FloorLevel()) }
	case SortTotal:
		cmp = func(a, b Row) int { return compareFloat(a.Score(), b.Score()) }
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			if c := compareInt(rows[i].Team.FloorLevel(), rows[j].Team.FloorLevel()); c != 0 {
				return c < 0
			}
			return byName(rows[i], rows[j]) < 0
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
}

// FilterByTrack keeps the rows filed under label as primary or add-on
// track. An empty label keeps everything.
func FilterByTrack(rows []Row, label string) []Row {
	if label == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		primary, addOn := r.Tracks()
		if primary == label || addOn == label {
			out = append(out, r)
		}
	}
	return out
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
