package testing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"

	"github.com/frontiertower/floorfinder-sub000/storage"
	"github.com/gin-gonic/gin"
)

// PerformRequest Helper for performing requests in tests.
func PerformRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			panic("failed to marshal request body: " + err.Error())
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = &bytes.Buffer{}
	}
	return PerformRawRequest(router, method, path, reqBody.Bytes(), headers)
}

// PerformRawRequest sends body as is.
func PerformRawRequest(router *gin.Engine, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

// MemoryRoomStorage is an in-process storage.RoomStorage for controller tests.
type MemoryRoomStorage struct {
	mu    sync.Mutex
	rooms []*storage.Room
}

func NewMemoryRoomStorage(rooms ...*storage.Room) *MemoryRoomStorage {
	return &MemoryRoomStorage{rooms: rooms}
}

func (m *MemoryRoomStorage) Get(_ context.Context, id string) (*storage.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rooms {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryRoomStorage) GetAll(context.Context) ([]*storage.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*storage.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRoomStorage) Create(_ context.Context, room *storage.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rooms {
		if r.ID == room.ID {
			return storage.ErrItemWithIDAlreadyExists
		}
	}
	cp := *room
	m.rooms = append(m.rooms, &cp)
	return nil
}

func (m *MemoryRoomStorage) Update(_ context.Context, room *storage.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rooms {
		if r.ID == room.ID {
			cp := *room
			m.rooms[i] = &cp
			return nil
		}
	}
	return storage.ErrItemNotFound
}

func (m *MemoryRoomStorage) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rooms {
		if r.ID == id {
			m.rooms = append(m.rooms[:i], m.rooms[i+1:]...)
			return nil
		}
	}
	return nil
}
