package ratings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/frontiertower/floorfinder-sub000/scoring"
	"github.com/frontiertower/floorfinder-sub000/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const maxUpdateAttempts = 3

var (
	ErrUnknownTeam   = errors.New("team not found in directory")
	ErrSessionClosed = errors.New("session closed")
)

// Session is one judge's scoring session. It owns the local scope that
// holds writes the remote store did not accept; that scope is dropped on
// Close.
type Session struct {
	ID       string
	JudgeID  string
	OpenedAt time.Time

	store   *Store
	local   *storage.MemoryKeyValueStorage
	service *Service
	// registered is set once the session is in the remote registry.
	registered bool

	mu     sync.Mutex
	closed bool
}

// ImportResult reports a rating file import.
type ImportResult struct {
	Result
	Imported    int                  `json:"imported"`
	Diagnostics []scoring.Diagnostic `json:"diagnostics,omitempty"`
}

func (s *Session) Ratings(ctx context.Context) (scoring.RatingSet, Result, error) {
	if err := s.check(); err != nil {
		return scoring.RatingSet{}, Result{Mode: Failed}, err
	}
	return s.store.Get(ctx, s.JudgeID)
}

// UpdateField changes one field of the judge's rating of teamKey. The whole
// set is read, changed and written back with a version check; a concurrent
// write by another session of the same judge makes it re-read and re-apply
// the change instead of overwriting that write.
func (s *Session) UpdateField(ctx context.Context, teamKey string, upd scoring.FieldUpdate) (scoring.Rating, Result, error) {
	ctx, span := tracer.Start(ctx, "ratings.UpdateField")
	defer span.End()
	span.SetAttributes(
		attribute.String("judge.id", s.JudgeID),
		attribute.String("team.key", teamKey),
		attribute.String("rating.field", string(upd.Field)),
	)

	if err := s.check(); err != nil {
		return scoring.Rating{}, Result{Mode: Failed}, err
	}

	for attempt := 1; ; attempt++ {
		set, res, err := s.store.Get(ctx, s.JudgeID)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return scoring.Rating{}, res, err
		}

		team, err := s.service.resolveTeam(ctx, teamKey, set)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return scoring.Rating{}, Result{Mode: Failed}, err
		}

		next, err := s.service.rules.UpdateField(set, team, upd)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return scoring.Rating{}, Result{Mode: Failed}, err
		}

		stored, res, err := s.store.CompareAndSet(ctx, s.JudgeID, next)
		if errors.Is(err, storage.ErrVersionConflict) && attempt < maxUpdateAttempts {
			logging.Log.Infof("JURY: judge %s ratings changed concurrently, retrying update of %s", s.JudgeID, teamKey)
			s.service.metrics.recordRetry()
			continue
		}
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return scoring.Rating{}, res, err
		}
		span.SetAttributes(attribute.String("persist.mode", string(res.Mode)))
		return stored.Ratings[teamKey], res, nil
	}
}

// Clear deletes every rating of the judge.
func (s *Session) Clear(ctx context.Context) (Result, error) {
	if err := s.check(); err != nil {
		return Result{Mode: Failed}, err
	}
	res, err := s.store.Clear(ctx, s.JudgeID)
	if err == nil {
		logging.Log.Infof("JURY: cleared all ratings of judge %s (%s)", s.JudgeID, res.Mode)
	}
	return res, err
}

func (s *Session) ExportJSON(ctx context.Context) ([]byte, Result, error) {
	set, res, err := s.Ratings(ctx)
	if err != nil {
		return nil, res, err
	}
	data, err := scoring.ExportJSON(set)
	if err != nil {
		return nil, Result{Mode: Failed}, err
	}
	return data, res, nil
}

// ImportJSON replaces the judge's whole set with the file contents. Ratings
// not in the file are gone afterwards.
func (s *Session) ImportJSON(ctx context.Context, data []byte) (ImportResult, error) {
	if err := s.check(); err != nil {
		return ImportResult{Result: Result{Mode: Failed}}, err
	}

	set, diags, err := s.service.rules.ImportJSON(s.JudgeID, data)
	if err != nil {
		return ImportResult{Result: Result{Mode: Failed}}, err
	}
	for _, d := range diags {
		logging.Log.Warnf("JURY: import for judge %s skipped %s: %s", s.JudgeID, d.TeamKey, d.Reason)
	}
	s.service.metrics.recordSkipped(len(diags))

	_, res, err := s.store.Set(ctx, s.JudgeID, set)
	if err != nil {
		return ImportResult{Result: res, Diagnostics: diags}, err
	}
	logging.Log.Infof("JURY: imported %d ratings for judge %s (%s)", len(set.Ratings), s.JudgeID, res.Mode)
	return ImportResult{Result: res, Imported: len(set.Ratings), Diagnostics: diags}, nil
}

// Rows lists every directory team with the judge's rating, sorted and
// filtered by the judge's own track choices.
func (s *Session) Rows(ctx context.Context, q Query) ([]scoring.Row, Result, error) {
	set, res, err := s.Ratings(ctx)
	if err != nil {
		return nil, res, err
	}
	dir, err := s.service.Directory(ctx)
	if err != nil {
		return nil, Result{Mode: Failed}, err
	}

	rows := scoring.FilterByTrack(scoring.JudgeRows(dir.Teams(), set), q.Track)
	scoring.SortRows(rows, q.SortField, q.Direction)
	return rows, res, nil
}

// ExportCSV writes the judge's rated teams. Unrated teams are left out.
func (s *Session) ExportCSV(ctx context.Context, w io.Writer, q Query) (Result, error) {
	rows, res, err := s.Rows(ctx, q)
	if err != nil {
		return res, err
	}
	if err := s.service.rules.WriteCSV(w, rows, scoring.ModeJudge); err != nil {
		return Result{Mode: Failed}, fmt.Errorf("write csv: %w", err)
	}
	return res, nil
}

// Close drops the local scope. Ratings that only reached it are lost.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if keys := s.local.Keys(); len(keys) > 0 {
		logging.Log.Warnf("JURY: closing session %s drops %d locally cached record(s)", s.ID, len(keys))
	}
	s.local.Reset()
}

func (s *Session) check() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}
