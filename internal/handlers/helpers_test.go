package handlers_test

import (
	"Nuremento/internal/clock"
	"Nuremento/internal/config"
	"Nuremento/internal/handlers"
	"Nuremento/internal/middleware"
	"Nuremento/internal/repo"
	"Nuremento/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// memImageStore - хранилище фото в памяти для тестов
type memImageStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemImageStore() *memImageStore {
	return &memImageStore{objects: map[string][]byte{}}
}

func (s *memImageStore) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.objects[key] = b
	s.mu.Unlock()
	return nil
}

func (s *memImageStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.objects, k)
	}
	return nil
}

func (s *memImageStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://images.test/" + key + "?sig=1", nil
}

func (s *memImageStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

var _ service.ImageStore = (*memImageStore)(nil)

type testEnv struct {
	router http.Handler
	clock  *clock.Fixed
	images *memImageStore
}

type envOption func(*config.Config)

func withBurn() envOption {
	return func(c *config.Config) { c.CapsuleOpenMode = config.CapsuleOpenBurn }
}

// newTestEnv собирает роутер на in-memory SQLite с часами, замороженными на now
func newTestEnv(t *testing.T, now time.Time, images *memImageStore, opts ...envOption) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret, ImageMaxSizeMB: 1, CapsuleOpenMode: config.CapsuleOpenKeep}
	for _, o := range opts {
		o(cfg)
	}

	db, err := repo.InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	logger := zap.NewNop().Sugar()
	clk := clock.NewFixed(now)

	var store service.ImageStore
	if images != nil {
		store = images
	}

	svc := handlers.Services{
		Daily:    service.NewDailyService(repo.NewMemoryRepository(db), repo.NewLakeNoteRepository(db), repo.NewDailyPickRepository(db), clk, logger),
		Memories: service.NewMemoryService(repo.NewMemoryRepository(db), store, clk, logger, cfg.ImageMaxBytes()),
		Lake:     service.NewLakeService(repo.NewLakeNoteRepository(db), clk, logger),
		Capsules: service.NewCapsuleService(repo.NewCapsuleRepository(db), clk, logger, cfg.BurnOnOpen()),
	}
	return &testEnv{router: handlers.NewHandler(svc, logger, cfg).Router, clock: clk, images: images}
}

func addAuth(t *testing.T, req *http.Request, ownerID string) {
	t.Helper()
	rr := httptest.NewRecorder()
	require.NoError(t, middleware.SetLoginCookie(rr, ownerID, testSecret))
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// do выполняет запрос от имени ownerID (пустой - анонимно)
func (e *testEnv) do(t *testing.T, method, path, ownerID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ownerID != "" {
		addAuth(t, req, ownerID)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), "body: %s", rr.Body.String())
	return m
}
