package ratings

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/frontiertower/floorfinder-sub000/scoring"
	"github.com/frontiertower/floorfinder-sub000/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	sessionIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	sessionIDLength   = 12

	defaultMaxConcurrentReads = 8
)

var tracer = otel.Tracer("github.com/frontiertower/floorfinder-sub000/ratings")

var (
	ErrUnknownJudge    = errors.New("judge is not part of the jury")
	ErrSessionNotFound = errors.New("session not found")
)

type Config struct {
	Rooms  storage.RoomStorage
	Remote storage.KeyValueStorage
	Rules  scoring.Rules
	// Judges is the jury in aggregation order. When empty any judge may
	// open a session.
	Judges             []string
	MaxConcurrentReads int
	Metrics            *Metrics
	Now                func() time.Time
}

// Query selects and orders listing rows.
type Query struct {
	SortField scoring.SortField
	Direction scoring.Direction
	Track     string
}

// AggregateResult is the cross-judge listing. FailedJudges names judges
// whose set could not be read; their ratings are missing from the rows.
type AggregateResult struct {
	Rows         []scoring.Row `json:"rows"`
	Judges       []string      `json:"judges"`
	FailedJudges []string      `json:"failedJudges,omitempty"`
	Partial      bool          `json:"partial"`
}

// sessionRecord is the shared registry entry of an open session. Any
// instance holding the record can serve the session.
type sessionRecord struct {
	JudgeID  string    `json:"judgeId"`
	OpenedAt time.Time `json:"openedAt"`
}

// Service serves judge sessions and aggregate reads. Open sessions are
// registered in the remote store, so a session opened on one instance can
// be served by another; the in-process map only caches them together with
// their local scope.
type Service struct {
	rooms          storage.RoomStorage
	remote         storage.KeyValueStorage
	rules          scoring.Rules
	judges         []string
	maxConcurrency int
	metrics        *Metrics
	now            func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(cfg Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	limit := cfg.MaxConcurrentReads
	if limit <= 0 {
		limit = defaultMaxConcurrentReads
	}
	return &Service{
		rooms:          cfg.Rooms,
		remote:         cfg.Remote,
		rules:          cfg.Rules,
		judges:         append([]string(nil), cfg.Judges...),
		maxConcurrency: limit,
		metrics:        cfg.Metrics,
		now:            now,
		sessions:       make(map[string]*Session),
	}
}

func (s *Service) Rules() scoring.Rules {
	return s.rules
}

// Directory rebuilds the team directory from the current rooms.
func (s *Service) Directory(ctx context.Context) (scoring.Directory, error) {
	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		logging.Log.Errorf("JURY: failed to load rooms: %v", err)
		return scoring.Directory{}, err
	}
	return scoring.BuildDirectory(rooms), nil
}

// OpenSession starts a session for judgeID with its own local scope and
// registers it in the remote store. When the store is down the session is
// still opened, but only this instance can serve it.
func (s *Service) OpenSession(ctx context.Context, judgeID string) (*Session, error) {
	if judgeID == "" {
		return nil, scoring.ErrMissingJudge
	}
	if !s.isJudge(judgeID) {
		logging.Log.Warnf("JURY: rejected session for unknown judge %s", judgeID)
		return nil, ErrUnknownJudge
	}

	id, err := gonanoid.Generate(sessionIDAlphabet, sessionIDLength)
	if err != nil {
		logging.Log.Errorf("JURY: failed to generate session id: %v", err)
		return nil, err
	}

	rec := sessionRecord{JudgeID: judgeID, OpenedAt: s.now().UTC()}
	session := s.newSession(id, rec)
	value, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if _, err := s.remote.Put(ctx, storage.SessionKey(id), value, 0); err != nil {
		logging.Log.Warnf("JURY: session %s is not registered remotely and only served here: %v", id, err)
	} else {
		session.registered = true
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()
	s.metrics.sessionOpened()

	logging.Log.Infof("JURY: opened session %s for judge %s", id, judgeID)
	return session, nil
}

// Session finds an open session. A session registered by another instance
// is picked up with a fresh local scope; one closed elsewhere is dropped.
// When the registry cannot be read, only sessions cached here are served.
func (s *Service) Session(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	cached, ok := s.sessions[id]
	s.mu.Unlock()

	rec, err := s.readSessionRecord(ctx, id)
	switch {
	case err != nil && ok:
		return cached, nil
	case err != nil:
		return nil, err
	case rec == nil && ok && !cached.registered:
		return cached, nil
	case rec == nil:
		if ok {
			s.forget(id)
			logging.Log.Infof("JURY: session %s was closed elsewhere", id)
		}
		return nil, ErrSessionNotFound
	case ok:
		return cached, nil
	}

	session := s.newSession(id, *rec)
	session.registered = true
	s.mu.Lock()
	existing, found := s.sessions[id]
	if found {
		session = existing
	} else {
		s.sessions[id] = session
	}
	s.mu.Unlock()
	if found {
		return session, nil
	}
	s.metrics.sessionOpened()
	logging.Log.Infof("JURY: resumed session %s of judge %s", id, session.JudgeID)
	return session, nil
}

// CloseSession removes the session from the registry and drops its local
// scope on this instance. When the registry cannot be updated the session
// is still closed here, but other instances may resume it.
func (s *Service) CloseSession(ctx context.Context, id string) error {
	session, err := s.Session(ctx, id)
	if err != nil {
		return err
	}
	if session.registered {
		if err := s.remote.Delete(ctx, storage.SessionKey(id)); err != nil {
			logging.Log.Warnf("JURY: session %s closed here but still registered: %v", id, err)
		}
	}
	s.forget(id)
	logging.Log.Infof("JURY: closed session %s of judge %s", id, session.JudgeID)
	return nil
}

func (s *Service) forget(id string) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		session.Close()
		s.metrics.sessionClosed()
	}
}

func (s *Service) newSession(id string, rec sessionRecord) *Session {
	local := storage.NewMemoryKeyValueStorage()
	return &Session{
		ID:       id,
		JudgeID:  rec.JudgeID,
		OpenedAt: rec.OpenedAt,
		store:    NewStore(s.remote, local, s.now, s.metrics),
		local:    local,
		service:  s,
	}
}

func (s *Service) readSessionRecord(ctx context.Context, id string) (*sessionRecord, error) {
	entry, err := s.remote.Get(ctx, storage.SessionKey(id))
	if err != nil || entry == nil {
		return nil, err
	}
	var rec sessionRecord
	if err := json.Unmarshal(entry.Value, &rec); err != nil {
		logging.Log.Errorf("JURY: session record %s is unreadable: %v", id, err)
		return nil, err
	}
	return &rec, nil
}

// Judges returns the configured jury followed by every other judge with a
// stored rating set or a session open here, the latter sorted by ID. When
// the store cannot be listed the judges known without it are returned along
// with the error.
func (s *Service) Judges(ctx context.Context) ([]string, error) {
	out := append([]string(nil), s.judges...)
	seen := make(map[string]bool, len(out))
	for _, j := range out {
		seen[j] = true
	}

	var extra []string
	add := func(judgeID string) {
		if judgeID != "" && !seen[judgeID] {
			seen[judgeID] = true
			extra = append(extra, judgeID)
		}
	}

	keys, err := s.remote.List(ctx, storage.RatingsKeyPrefix())
	if err != nil {
		logging.Log.Warnf("JURY: failed to list stored judges: %v", err)
	}
	for _, key := range keys {
		if judgeID, ok := storage.JudgeFromRatingsKey(key); ok {
			add(judgeID)
		}
	}

	s.mu.Lock()
	for _, session := range s.sessions {
		add(session.JudgeID)
	}
	s.mu.Unlock()

	sort.Strings(extra)
	return append(out, extra...), err
}

// Aggregate reads every judge's set concurrently and combines them per
// team. A judge whose read fails is left out and reported; the result is
// not a consistent snapshot across judges.
func (s *Service) Aggregate(ctx context.Context, q Query) (AggregateResult, error) {
	ctx, span := tracer.Start(ctx, "ratings.Aggregate", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	start := time.Now()

	dir, err := s.Directory(ctx)
	if err != nil {
		return AggregateResult{}, err
	}

	judges, listErr := s.Judges(ctx)
	sets := make([]*scoring.RatingSet, len(judges))
	reader := NewStore(s.remote, nil, s.now, s.metrics)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, judgeID := range judges {
		g.Go(func() error {
			set, _, err := reader.Get(gctx, judgeID)
			if err != nil {
				logging.Log.Warnf("JURY: aggregate skipped judge %s: %v", judgeID, err)
				return nil
			}
			sets[i] = &set
			return nil
		})
	}
	_ = g.Wait()

	result := AggregateResult{Judges: []string{}}
	var inputs []scoring.JudgeRatings
	for i, judgeID := range judges {
		if sets[i] == nil {
			result.FailedJudges = append(result.FailedJudges, judgeID)
			continue
		}
		result.Judges = append(result.Judges, judgeID)
		inputs = append(inputs, scoring.JudgeRatings{JudgeID: judgeID, Ratings: sets[i].Ratings})
	}
	// an unlisted store may hide judges, so the rows can be incomplete
	result.Partial = len(result.FailedJudges) > 0 || listErr != nil

	rows := scoring.FilterByTrack(s.rules.AggregateRows(dir.Teams(), inputs), q.Track)
	scoring.SortRows(rows, q.SortField, q.Direction)
	result.Rows = rows

	span.SetAttributes(
		attribute.Int("jury.judges", len(judges)),
		attribute.Int("jury.failed_judges", len(result.FailedJudges)),
		attribute.Int("jury.teams", len(rows)),
	)
	s.metrics.recordAggregate(time.Since(start), len(result.FailedJudges))
	return result, nil
}

func (s *Service) isJudge(judgeID string) bool {
	if len(s.judges) == 0 {
		return true
	}
	for _, j := range s.judges {
		if j == judgeID {
			return true
		}
	}
	return false
}

// resolveTeam finds the team in the directory, falling back to the snapshot
// of an existing rating when the team's rooms have since changed.
func (s *Service) resolveTeam(ctx context.Context, teamKey string, set scoring.RatingSet) (scoring.Team, error) {
	dir, err := s.Directory(ctx)
	if err != nil {
		return scoring.Team{}, err
	}
	if team, ok := dir.Get(teamKey); ok {
		return team, nil
	}
	if r, ok := set.Get(teamKey); ok {
		return scoring.Team{
			Key:         r.TeamKey,
			TeamName:    r.TeamName,
			TeamNumber:  r.TeamNumber,
			ProjectName: r.ProjectName,
			RoomNumber:  r.RoomNumber,
			FloorID:     r.FloorID,
		}, nil
	}
	return scoring.Team{}, ErrUnknownTeam
}

// Sessions lists the open sessions, oldest first: every session in the
// remote registry plus those only served by this instance.
func (s *Service) Sessions(ctx context.Context) ([]*Session, error) {
	byID := make(map[string]*Session)
	s.mu.Lock()
	for id, session := range s.sessions {
		byID[id] = session
	}
	s.mu.Unlock()

	keys, err := s.remote.List(ctx, storage.SessionKeyPrefix())
	if err != nil {
		logging.Log.Errorf("JURY: failed to list sessions: %v", err)
		return nil, err
	}
	for _, key := range keys {
		id, ok := storage.SessionFromKey(key)
		if !ok || byID[id] != nil {
			continue
		}
		rec, err := s.readSessionRecord(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			byID[id] = s.newSession(id, *rec)
		}
	}

	out := make([]*Session, 0, len(byID))
	for _, session := range byID {
		out = append(out, session)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OpenedAt.Equal(out[j].OpenedAt) {
			return out[i].OpenedAt.Before(out[j].OpenedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ResetRatings deletes the stored set of every judge, including judges
// without an open session, and empties the local scope of the sessions
// served here. Judges whose set could not be deleted are returned in
// failed; the others in reset. Nothing is deleted when the stored judges
// cannot be listed.
func (s *Service) ResetRatings(ctx context.Context) (reset, failed []string, err error) {
	judges, err := s.Judges(ctx)
	if err != nil {
		return nil, nil, err
	}

	store := NewStore(s.remote, nil, s.now, s.metrics)
	for _, judgeID := range judges {
		if _, err := store.Clear(ctx, judgeID); err != nil {
			logging.Log.Errorf("JURY: failed to reset ratings of judge %s: %v", judgeID, err)
			failed = append(failed, judgeID)
			continue
		}
		reset = append(reset, judgeID)
	}

	s.mu.Lock()
	for _, session := range s.sessions {
		session.local.Reset()
	}
	s.mu.Unlock()
	logging.Log.Infof("JURY: reset ratings of %d judge(s), %d failed", len(reset), len(failed))
	return reset, failed, nil
}
