package ratings

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/frontiertower/floorfinder-sub000/storage"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var errUnavailable = errors.New("store unavailable")

// flakyKV wraps a memory store and fails on demand.
type flakyKV struct {
	inner *storage.MemoryKeyValueStorage

	mu          sync.Mutex
	down        bool
	failGetKeys map[string]bool
	failList    bool
	conflicts   int
	puts        int
}

func newFlakyKV() *flakyKV {
	return &flakyKV{inner: storage.NewMemoryKeyValueStorage(), failGetKeys: map[string]bool{}}
}

func (f *flakyKV) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *flakyKV) Get(ctx context.Context, key string) (*storage.Entry, error) {
	f.mu.Lock()
	fail := f.down || f.failGetKeys[key]
	f.mu.Unlock()
	if fail {
		return nil, errUnavailable
	}
	return f.inner.Get(ctx, key)
}

func (f *flakyKV) Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	f.mu.Lock()
	if f.down {
		f.mu.Unlock()
		return 0, errUnavailable
	}
	f.puts++
	if f.conflicts > 0 && expectedVersion != storage.AnyVersion {
		f.conflicts--
		f.mu.Unlock()
		return 0, storage.ErrVersionConflict
	}
	f.mu.Unlock()
	return f.inner.Put(ctx, key, value, expectedVersion)
}

func (f *flakyKV) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	down := f.down
	f.mu.Unlock()
	if down {
		return errUnavailable
	}
	return f.inner.Delete(ctx, key)
}

func (f *flakyKV) List(ctx context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	fail := f.down || f.failList
	f.mu.Unlock()
	if fail {
		return nil, errUnavailable
	}
	return f.inner.List(ctx, prefix)
}

type memRooms struct {
	rooms []*storage.Room
	err   error
}

func (m *memRooms) Get(_ context.Context, id string) (*storage.Room, error) {
	for _, r := range m.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRooms) GetAll(context.Context) ([]*storage.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rooms, nil
}

func (m *memRooms) Create(_ context.Context, room *storage.Room) error {
	m.rooms = append(m.rooms, room)
	return nil
}

func (m *memRooms) Update(_ context.Context, room *storage.Room) error {
	for i, r := range m.rooms {
		if r.ID == room.ID {
			m.rooms[i] = room
			return nil
		}
	}
	return storage.ErrItemNotFound
}

func (m *memRooms) Delete(_ context.Context, id string) error {
	for i, r := range m.rooms {
		if r.ID == id {
			m.rooms = append(m.rooms[:i], m.rooms[i+1:]...)
			return nil
		}
	}
	return nil
}

func testRooms() *memRooms {
	return &memRooms{rooms: []*storage.Room{
		{ID: "r1", Name: "201 SF2", TeamName: "Alpha", ProjectName: "Holo Maps", FloorID: "floor-2", Track: "Hand Tracking"},
		{ID: "r2", Name: "202 SF3", TeamName: "Beta", ProjectName: "Room Scan", FloorID: "floor-2"},
		{ID: "r3", Name: "1001 SF10", TeamName: "Gamma", ProjectName: "Arcade", FloorID: "floor-10"},
		{ID: "r4", Name: "1002", TeamName: "private", FloorID: "floor-10"},
	}}
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

var (
	spanRecorderOnce sync.Once
	spanRecorder     *tracetest.SpanRecorder
)

// recordSpans installs a recording tracer provider once per test binary.
// The package tracer was handed out before and delegates to it.
func recordSpans() *tracetest.SpanRecorder {
	spanRecorderOnce.Do(func() {
		spanRecorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))
	})
	return spanRecorder
}
