// Package ratings persists judge rating sets and serves the judge sessions
// and aggregate reads built on top of them.
package ratings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/frontiertower/floorfinder-sub000/scoring"
	"github.com/frontiertower/floorfinder-sub000/storage"
)

// PersistMode tells the caller where a store call was served.
type PersistMode string

const (
	// Persisted means the remote store took the call.
	Persisted PersistMode = "persisted"
	// Cached means the remote store failed and the call was served from
	// the session-local scope, which is lost when the session closes.
	Cached PersistMode = "cached"
	// Failed means neither scope could serve the call.
	Failed PersistMode = "failed"
)

type Result struct {
	Mode PersistMode `json:"mode"`
}

// Store keeps one record per judge under storage.RatingsKey. When the
// remote store errors, a call is served entirely by the local scope; a call
// never touches both.
type Store struct {
	remote  storage.KeyValueStorage
	local   storage.KeyValueStorage
	now     func() time.Time
	metrics *Metrics
}

// NewStore builds a store. local may be nil, in which case remote failures
// are reported as Failed.
func NewStore(remote, local storage.KeyValueStorage, now func() time.Time, metrics *Metrics) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{remote: remote, local: local, now: now, metrics: metrics}
}

// Get returns the judge's set. A judge with no record gets an empty set.
func (s *Store) Get(ctx context.Context, judgeID string) (scoring.RatingSet, Result, error) {
	if judgeID == "" {
		return scoring.RatingSet{}, Result{Mode: Failed}, scoring.ErrMissingJudge
	}
	key := storage.RatingsKey(judgeID)

	mode := Persisted
	entry, err := s.remote.Get(ctx, key)
	if err != nil {
		if s.local == nil {
			s.metrics.recordStore("get", Failed)
			return scoring.RatingSet{}, Result{Mode: Failed}, err
		}
		logging.Log.Warnf("JURY: remote read for judge %s failed, using local scope: %v", judgeID, err)
		mode = Cached
		entry, err = s.local.Get(ctx, key)
		if err != nil {
			s.metrics.recordStore("get", Failed)
			return scoring.RatingSet{}, Result{Mode: Failed}, err
		}
	}

	set, err := decodeSet(judgeID, entry)
	if err != nil {
		logging.Log.Errorf("JURY: stored ratings for judge %s are unreadable: %v", judgeID, err)
		s.metrics.recordStore("get", Failed)
		return scoring.RatingSet{}, Result{Mode: Failed}, err
	}
	s.metrics.recordStore("get", mode)
	return set, Result{Mode: mode}, nil
}

// Set replaces the judge's whole set. Every rating is stamped with the
// store clock. The returned set is what was written.
func (s *Store) Set(ctx context.Context, judgeID string, set scoring.RatingSet) (scoring.RatingSet, Result, error) {
	return s.put(ctx, "set", judgeID, set, storage.AnyVersion)
}

// CompareAndSet replaces the set only if the stored version still equals
// set.Version. A conflict is returned as storage.ErrVersionConflict and is
// never served from the local scope.
func (s *Store) CompareAndSet(ctx context.Context, judgeID string, set scoring.RatingSet) (scoring.RatingSet, Result, error) {
	return s.put(ctx, "compare_and_set", judgeID, set, set.Version)
}

func (s *Store) put(ctx context.Context, op, judgeID string, set scoring.RatingSet, expected int64) (scoring.RatingSet, Result, error) {
	if judgeID == "" {
		return set, Result{Mode: Failed}, scoring.ErrMissingJudge
	}

	stamped := set.Clone()
	stamped.JudgeID = judgeID
	now := s.now().UTC()
	for k, r := range stamped.Ratings {
		r.LastUpdated = now
		if err := r.Validate(); err != nil {
			s.metrics.recordStore(op, Failed)
			return set, Result{Mode: Failed}, fmt.Errorf("team %s: %w", k, err)
		}
		stamped.Ratings[k] = r
	}

	value, err := json.Marshal(scoring.Snapshot{JudgeID: judgeID, Ratings: stamped.Ratings})
	if err != nil {
		s.metrics.recordStore(op, Failed)
		return set, Result{Mode: Failed}, err
	}
	key := storage.RatingsKey(judgeID)

	version, err := s.remote.Put(ctx, key, value, expected)
	if err == nil {
		stamped.Version = version
		s.metrics.recordStore(op, Persisted)
		return stamped, Result{Mode: Persisted}, nil
	}
	if errors.Is(err, storage.ErrVersionConflict) || s.local == nil {
		s.metrics.recordStore(op, Failed)
		return set, Result{Mode: Failed}, err
	}

	logging.Log.Warnf("JURY: remote write for judge %s failed, keeping ratings in local scope: %v", judgeID, err)
	version, lerr := s.local.Put(ctx, key, value, storage.AnyVersion)
	if lerr != nil {
		s.metrics.recordStore(op, Failed)
		return set, Result{Mode: Failed}, errors.Join(err, lerr)
	}
	stamped.Version = version
	s.metrics.recordStore(op, Cached)
	return stamped, Result{Mode: Cached}, nil
}

// Clear deletes the judge's whole set.
func (s *Store) Clear(ctx context.Context, judgeID string) (Result, error) {
	if judgeID == "" {
		return Result{Mode: Failed}, scoring.ErrMissingJudge
	}
	key := storage.RatingsKey(judgeID)

	err := s.remote.Delete(ctx, key)
	if err == nil {
		if s.local != nil {
			_ = s.local.Delete(ctx, key)
		}
		s.metrics.recordStore("clear", Persisted)
		return Result{Mode: Persisted}, nil
	}
	if s.local == nil {
		s.metrics.recordStore("clear", Failed)
		return Result{Mode: Failed}, err
	}

	logging.Log.Warnf("JURY: remote clear for judge %s failed, clearing local scope only: %v", judgeID, err)
	if lerr := s.local.Delete(ctx, key); lerr != nil {
		s.metrics.recordStore("clear", Failed)
		return Result{Mode: Failed}, errors.Join(err, lerr)
	}
	s.metrics.recordStore("clear", Cached)
	return Result{Mode: Cached}, nil
}

func decodeSet(judgeID string, entry *storage.Entry) (scoring.RatingSet, error) {
	set := scoring.NewRatingSet(judgeID)
	if entry == nil {
		return set, nil
	}

	var snap scoring.Snapshot
	if err := json.Unmarshal(entry.Value, &snap); err != nil {
		return set, err
	}
	for k, r := range snap.Ratings {
		set.Ratings[k] = r
	}
	set.Version = entry.Version
	return set, nil
}
