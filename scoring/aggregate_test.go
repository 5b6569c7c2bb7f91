package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func judgesWith(teamKey string, ratings ...Rating) []JudgeRatings {
	out := make([]JudgeRatings, 0, len(ratings))
	for i, r := range ratings {
		id := string(rune('a' + i))
		out = append(out, JudgeRatings{JudgeID: id, Ratings: map[string]Rating{teamKey: r}})
	}
	return out
}

func TestFieldAverage_IgnoresZeroScores(t *testing.T) {
	judges := judgesWith("T-1",
		Rating{HandTracking: 5},
		Rating{HandTracking: 0},
		Rating{HandTracking: 3},
	)

	assert.Equal(t, 4.0, FieldAverage("T-1", HandTracking, judges))
}

func TestFieldAverage_NoScoresIsZero(t *testing.T) {
	judges := judgesWith("T-1", Rating{}, Rating{})

	assert.Equal(t, 0.0, FieldAverage("T-1", Concept, judges))
	assert.Equal(t, 0.0, FieldAverage("missing", Concept, judges))
}

func TestTeamAverage_UsesPositiveTotals(t *testing.T) {
	judges := judgesWith("T-1",
		Rating{Total: 4},
		Rating{Total: 0},
		Rating{Total: 2},
	)

	assert.Equal(t, 3.0, TeamAverage("T-1", judges))
	assert.Equal(t, 0.0, TeamAverage("T-2", judges))
}

func TestMostCommonTrack_Majority(t *testing.T) {
	orders := [][]Rating{
		{{Track: "X"}, {Track: "X"}, {Track: "Y"}},
		{{Track: "Y"}, {Track: "X"}, {Track: "X"}},
		{{Track: "X"}, {Track: "Y"}, {Track: "X"}},
	}
	for _, ratings := range orders {
		assert.Equal(t, "X", MostCommonTrack("T-1", PrimaryTrack, judgesWith("T-1", ratings...)))
	}
}

func TestMostCommonTrack_TieGoesToSmallestLabel(t *testing.T) {
	a := judgesWith("T-1", Rating{Track: "Zeta"}, Rating{Track: "Alpha"})
	b := judgesWith("T-1", Rating{Track: "Alpha"}, Rating{Track: "Zeta"})

	assert.Equal(t, "Alpha", MostCommonTrack("T-1", PrimaryTrack, a))
	assert.Equal(t, "Alpha", MostCommonTrack("T-1", PrimaryTrack, b))
}

func TestMostCommonTrack_AddOnSlotAndBlanks(t *testing.T) {
	judges := judgesWith("T-1",
		Rating{Track: "X", AddOnTrack: ""},
		Rating{Track: "", AddOnTrack: "Upgrade"},
	)

	assert.Equal(t, "X", MostCommonTrack("T-1", PrimaryTrack, judges))
	assert.Equal(t, "Upgrade", MostCommonTrack("T-1", AddOnTrack, judges))
	assert.Equal(t, "", MostCommonTrack("T-2", PrimaryTrack, judges))
}

func TestAllNotes_TrimsAndKeepsJudgeOrder(t *testing.T) {
	judges := judgesWith("T-1",
		Rating{Notes: "  strong demo "},
		Rating{Notes: "   "},
		Rating{Notes: "needs polish"},
	)

	notes := AllNotes("T-1", judges)
	assert.Equal(t, []JudgeNote{{JudgeID: "a", Notes: "strong demo"}, {JudgeID: "c", Notes: "needs polish"}}, notes)

	view := AggregateView{Notes: notes}
	assert.Equal(t, "[a] strong demo | [c] needs polish", view.NotesText())
}

func TestAggregate(t *testing.T) {
	rules := Rules{}
	judges := []JudgeRatings{
		{JudgeID: "j1", Ratings: map[string]Rating{"T-1": {Concept: 4, Quality: 2, Total: 3, Track: "Hand Tracking"}}},
		{JudgeID: "j2", Ratings: map[string]Rating{"T-1": {Concept: 2, Total: 2, Track: "Hand Tracking", Notes: "ok"}}},
		{JudgeID: "j3", Ratings: map[string]Rating{}},
	}

	view := rules.Aggregate("T-1", judges)

	assert.Equal(t, "T-1", view.TeamKey)
	assert.Equal(t, 3.0, view.Averages[Concept])
	assert.Equal(t, 2.0, view.Averages[Quality])
	assert.Equal(t, 0.0, view.Averages[HandTracking])
	assert.Equal(t, 2.5, view.Average)
	assert.Equal(t, "Hand Tracking", view.Track)
	assert.Equal(t, 2, view.JudgeCount)
	assert.Len(t, view.Notes, 1)
}

func TestAggregate_NoRatings(t *testing.T) {
	view := Rules{}.Aggregate("T-1", nil)

	assert.Equal(t, 0.0, view.Average)
	assert.Equal(t, "", view.Track)
	assert.Empty(t, view.Notes)
	assert.Equal(t, 0, view.JudgeCount)
}
