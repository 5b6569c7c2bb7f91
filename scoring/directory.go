package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/frontiertower/floorfinder-sub000/storage"
)

// PrivateTeamMarker marks rooms that are occupied but not part of judging.
const PrivateTeamMarker = "private"

var (
	teamCodePattern = regexp.MustCompile(`\b([A-Za-z]{2}\d+)\b`)
	teamCodeSuffix  = regexp.MustCompile(`[\s\-_/,]*\(?\b[A-Za-z]{2}\d+\)?\s*$`)
	digitRunPattern = regexp.MustCompile(`\d+`)
)

// Team is a judged team derived from the rooms it occupies.
type Team struct {
	Key         string `json:"teamKey"`
	TeamName    string `json:"teamName"`
	TeamNumber  string `json:"teamNumber"`
	ProjectName string `json:"projectName"`
	RoomNumber  string `json:"roomNumber"`
	RoomID      string `json:"roomId"`
	FloorID     string `json:"floorId"`
}

// FloorLevel is the number embedded in the floor ID, 0 when there is none.
func (t Team) FloorLevel() int {
	return DigitRun(t.FloorID)
}

// Directory is the set of distinct teams in first-seen order.
type Directory struct {
	order []string
	teams map[string]Team
}

func TeamKey(teamName, floorID string) string {
	return teamName + "-" + floorID
}

// BuildDirectory derives one team per team name and floor. The first room
// seen for a key provides the descriptive fields; later duplicates are
// ignored.
func BuildDirectory(rooms []*storage.Room) Directory {
	dir := Directory{teams: make(map[string]Team)}
	for _, room := range rooms {
		team, ok := teamFromRoom(room)
		if !ok {
			continue
		}
		if _, seen := dir.teams[team.Key]; seen {
			continue
		}
		dir.order = append(dir.order, team.Key)
		dir.teams[team.Key] = team
	}
	return dir
}

func teamFromRoom(room *storage.Room) (Team, bool) {
	if room == nil {
		return Team{}, false
	}
	name := strings.TrimSpace(room.TeamName)
	if name == "" || strings.EqualFold(name, PrivateTeamMarker) {
		return Team{}, false
	}

	display := room.Name
	if strings.TrimSpace(display) == "" {
		display = room.ID
	}

	number := strings.TrimSpace(room.TeamNumber)
	if number == "" {
		number = DeriveTeamNumber(display)
	}

	return Team{
		Key:         TeamKey(name, room.FloorID),
		TeamName:    name,
		TeamNumber:  number,
		ProjectName: strings.TrimSpace(room.ProjectName),
		RoomNumber:  RoomNumber(display),
		RoomID:      room.ID,
		FloorID:     room.FloorID,
	}, true
}

// DeriveTeamNumber finds a code like "SF12" in a room name.
func DeriveTeamNumber(name string) string {
	m := teamCodePattern.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return m[1]
}

// RoomNumber strips a trailing team code from a room name.
func RoomNumber(name string) string {
	stripped := strings.TrimSpace(teamCodeSuffix.ReplaceAllString(name, ""))
	if stripped == "" {
		return strings.TrimSpace(name)
	}
	return stripped
}

// DigitRun parses the first run of digits in s, 0 when there is none.
func DigitRun(s string) int {
	m := digitRunPattern.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

func (d Directory) Teams() []Team {
	out := make([]Team, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.teams[k])
	}
	return out
}

func (d Directory) Get(key string) (Team, bool) {
	t, ok := d.teams[key]
	return t, ok
}

func (d Directory) Len() int {
	return len(d.order)
}
