package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func teamKeys(rows []Row) []string {
	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.Team.Key)
	}
	return keys
}

func sampleRows() []Row {
	return []Row{
		{Team: Team{Key: "c", TeamName: "charlie", TeamNumber: "SF10", RoomNumber: "1001", FloorID: "floor-10", ProjectName: "Beta"}},
		{Team: Team{Key: "a", TeamName: "Alpha", TeamNumber: "SF2", RoomNumber: "201", FloorID: "floor-2", ProjectName: "gamma"}},
		{Team: Team{Key: "b", TeamName: "bravo", TeamNumber: "SF3", RoomNumber: "202", FloorID: "floor-2", ProjectName: "Alpha"}},
	}
}

func TestSortRows_TeamNumberIsNumeric(t *testing.T) {
	rows := sampleRows()
	SortRows(rows, SortTeamNumber, Ascending)
	assert.Equal(t, []string{"a", "b", "c"}, teamKeys(rows))

	SortRows(rows, SortTeamNumber, Descending)
	assert.Equal(t, []string{"c", "b", "a"}, teamKeys(rows))
}

func TestSortRows_NamesIgnoreCase(t *testing.T) {
	rows := sampleRows()
	SortRows(rows, SortTeamName, Ascending)
	assert.Equal(t, []string{"a", "b", "c"}, teamKeys(rows))

	SortRows(rows, SortProjectName, Ascending)
	assert.Equal(t, []string{"b", "c", "a"}, teamKeys(rows))
}

func TestSortRows_RoomAndFloor(t *testing.T) {
	rows := sampleRows()
	SortRows(rows, SortRoomNumber, Descending)
	assert.Equal(t, []string{"c", "b", "a"}, teamKeys(rows))

	rows = sampleRows()
	SortRows(rows, SortFloor, Ascending)
	// stable for equal floors
	assert.Equal(t, []string{"a", "b", "c"}, teamKeys(rows))
}

func TestSortRows_Total(t *testing.T) {
	rows := sampleRows()
	rows[0].Rating = &Rating{Total: 2}
	rows[1].Rating = &Rating{Total: 4.5}

	SortRows(rows, SortTotal, Descending)
	assert.Equal(t, []string{"a", "c", "b"}, teamKeys(rows))
}

func TestSortRows_UnknownFieldUsesFloorThenName(t *testing.T) {
	rows := []Row{
		{Team: Team{Key: "z", TeamName: "Zulu", FloorID: "floor-2"}},
		{Team: Team{Key: "y", TeamName: "Yankee", FloorID: "floor-10"}},
		{Team: Team{Key: "a", TeamName: "Alpha", FloorID: "floor-2"}},
	}

	SortRows(rows, "bogus", Descending)
	assert.Equal(t, []string{"a", "z", "y"}, teamKeys(rows))
}

func TestFilterByTrack(t *testing.T) {
	rows := []Row{
		{Team: Team{Key: "a"}, Rating: &Rating{Track: "X"}},
		{Team: Team{Key: "b"}, Rating: &Rating{AddOnTrack: "X"}},
		{Team: Team{Key: "c"}, Rating: &Rating{Track: "Y"}},
		{Team: Team{Key: "d"}},
		{Team: Team{Key: "e"}, Aggregate: &AggregateView{Track: "X"}},
	}

	assert.Equal(t, []string{"a", "b", "e"}, teamKeys(FilterByTrack(rows, "X")))
	assert.Len(t, FilterByTrack(rows, ""), 5)
}

func TestJudgeRows(t *testing.T) {
	teams := []Team{{Key: "a"}, {Key: "b"}}
	set := NewRatingSet("j")
	set.Ratings["b"] = Rating{TeamKey: "b", Total: 3}

	rows := JudgeRows(teams, set)

	assert.Len(t, rows, 2)
	assert.Nil(t, rows[0].Rating)
	assert.Equal(t, 3.0, rows[1].Score())
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Ascending, ParseDirection(""))
}
