package scoring

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Snapshot is the backup file format of one judge's ratings.
type Snapshot struct {
	JudgeID string            `json:"judgeId"`
	Ratings map[string]Rating `json:"ratings"`
}

// Diagnostic explains why an imported entry was skipped.
type Diagnostic struct {
	TeamKey string `json:"teamKey"`
	Reason  string `json:"reason"`
}

func ExportJSON(set RatingSet) ([]byte, error) {
	ratings := set.Ratings
	if ratings == nil {
		ratings = map[string]Rating{}
	}
	return json.MarshalIndent(Snapshot{JudgeID: set.JudgeID, Ratings: ratings}, "", "  ")
}

// ImportJSON reads a backup file into a set for judgeID. Entries that cannot
// be decoded or validated are skipped and reported; only a file that is not
// a snapshot at all is an error. Totals are recomputed and every rating is
// rebound to judgeID and to the key it is filed under.
func (r Rules) ImportJSON(judgeID string, data []byte) (RatingSet, []Diagnostic, error) {
	if judgeID == "" {
		return RatingSet{}, nil, ErrMissingJudge
	}

	var raw struct {
		JudgeID string                     `json:"judgeId"`
		Ratings map[string]json.RawMessage `json:"ratings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return RatingSet{}, nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	set := NewRatingSet(judgeID)
	var diags []Diagnostic
	for key, msg := range raw.Ratings {
		var rating Rating
		if err := json.Unmarshal(msg, &rating); err != nil {
			diags = append(diags, Diagnostic{TeamKey: key, Reason: err.Error()})
			continue
		}
		rating.TeamKey = key
		rating.JudgeID = judgeID
		rating.Total = r.Total(rating)
		if err := rating.Validate(); err != nil {
			diags = append(diags, Diagnostic{TeamKey: key, Reason: err.Error()})
			continue
		}
		set.Ratings[key] = rating
	}
	return set, diags, nil
}

// WriteCSV writes one header line and one line per row. In judge mode rows
// without a rating, or whose rating has every field cleared, are left out; in aggregate mode averages are written with
// one decimal and the judges' notes are joined into one column.
func (r Rules) WriteCSV(w io.Writer, rows []Row, mode Mode) error {
	bw := bufio.NewWriter(w)
	dims := r.Dimensions()

	header := []string{"Team Number", "Team Name", "Project Name", "Room Number", "Floor", "Track", "Add-On Track"}
	for _, d := range dims {
		header = append(header, d.Label())
	}
	if mode == ModeAggregate {
		header = append(header, "Average", "Judges", "Notes")
	} else {
		header = append(header, "Total", "Notes", "Last Updated")
	}
	quoted := make([]string, len(header))
	for i, h := range header {
		quoted[i] = quoteCSV(h)
	}
	if _, err := bw.WriteString(strings.Join(quoted, ",") + "\n"); err != nil {
		return err
	}

	for _, row := range rows {
		var cols []string
		switch mode {
		case ModeAggregate:
			if row.Aggregate == nil {
				continue
			}
			v := row.Aggregate
			cols = teamColumns(row.Team, v.Track, v.AddOnTrack)
			for _, d := range dims {
				cols = append(cols, oneDecimal(v.Averages[d]))
			}
			cols = append(cols, oneDecimal(v.Average), strconv.Itoa(v.JudgeCount), quoteCSV(v.NotesText()))
		default:
			if row.Rating == nil || !r.HasInput(*row.Rating) {
				continue
			}
			rt := row.Rating
			cols = teamColumns(row.Team, rt.Track, rt.AddOnTrack)
			for _, d := range dims {
				cols = append(cols, strconv.Itoa(rt.Score(d)))
			}
			cols = append(cols,
				strconv.FormatFloat(rt.Total, 'f', -1, 64),
				quoteCSV(rt.Notes),
				quoteCSV(formatTime(rt.LastUpdated)),
			)
		}
		if _, err := bw.WriteString(strings.Join(cols, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func teamColumns(t Team, track, addOn string) []string {
	return []string{
		quoteCSV(t.TeamNumber),
		quoteCSV(t.TeamName),
		quoteCSV(t.ProjectName),
		quoteCSV(t.RoomNumber),
		quoteCSV(t.FloorID),
		quoteCSV(track),
		quoteCSV(addOn),
	}
}

// quoteCSV always quotes; encoding/csv only quotes when it has to.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
