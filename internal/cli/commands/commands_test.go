package commands

import (
	"Nuremento/internal/clock"
	"Nuremento/internal/config"
	"Nuremento/internal/handlers"
	"Nuremento/internal/repo"
	"Nuremento/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer поднимает настоящий HTTP-стек на in-memory SQLite
func newTestServer(t *testing.T, secret string, now time.Time) (*httptest.Server, *clock.Fixed) {
	t.Helper()
	db, err := repo.InitDB(":memory:")
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	clk := clock.NewFixed(now)
	cfg := &config.Config{AuthSecret: secret, ImageMaxSizeMB: 1}

	svc := handlers.Services{
		Daily:    service.NewDailyService(repo.NewMemoryRepository(db), repo.NewLakeNoteRepository(db), repo.NewDailyPickRepository(db), clk, logger),
		Memories: service.NewMemoryService(repo.NewMemoryRepository(db), nil, clk, logger, cfg.ImageMaxBytes()),
		Lake:     service.NewLakeService(repo.NewLakeNoteRepository(db), clk, logger),
		Capsules: service.NewCapsuleService(repo.NewCapsuleRepository(db), clk, logger, false),
	}
	ts := httptest.NewServer(handlers.NewHandler(svc, logger, cfg).Router)
	t.Cleanup(ts.Close)
	return ts, clk
}

var idRe = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

func run(t *testing.T, cfg *config.Config, args ...string) (string, int) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, args) })
	return out, code
}

func TestCommands_EndToEnd(t *testing.T) {
	cfg := withTempConfig(t, "")
	ts, clk := newTestServer(t, cfg.AuthSecret, time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC))
	cfg.ServerURL = ts.URL

	out, code := run(t, cfg, "today")
	assert.Equal(t, 1, code, "no token yet")
	assert.Contains(t, out, "not logged in")

	out, code = run(t, cfg, "dev-token", "owner-1")
	require.Equal(t, 0, code, out)

	out, code = run(t, cfg, "today")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "No memories yet")

	out, code = run(t, cfg, "memory-add", "Picnic", "Ants everywhere")
	require.Equal(t, 0, code, out)
	out, _ = run(t, cfg, "today")
	assert.Contains(t, out, "Picnic")

	out, code = run(t, cfg, "lake-add", "Stone", "Skipped four times")
	require.Equal(t, 0, code, out)
	out, _ = run(t, cfg, "lake")
	assert.Contains(t, out, "Skipped four times")
	out, _ = run(t, cfg, "lake")
	assert.Contains(t, out, "Come back tomorrow")

	out, code = run(t, cfg, "capsule-add", "Hello", "2025-04-12", "see", "you", "soon")
	require.Equal(t, 0, code, out)
	id := idRe.FindString(out)
	require.NotEmpty(t, id)

	out, code = run(t, cfg, "capsule-open", id)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "locked until 2025-04-12")

	out, _ = run(t, cfg, "capsules")
	assert.Contains(t, out, "locked")

	clk.Advance(48 * time.Hour)
	out, code = run(t, cfg, "capsule-open", id)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "see you soon")

	out, code = run(t, cfg, "capsule-delete", id)
	require.Equal(t, 0, code, out)
	out, code = run(t, cfg, "capsule-delete", id)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "not found")
}

func TestCommands_ValidationMessage(t *testing.T) {
	cfg := withTempConfig(t, "")
	ts, _ := newTestServer(t, cfg.AuthSecret, time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC))
	cfg.ServerURL = ts.URL
	_, code := run(t, cfg, "dev-token", "owner-1")
	require.Equal(t, 0, code)

	out, code := run(t, cfg, "capsule-add", "Past", "2025-04-01", "too late")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "openOn: openOn must be today or later.")

	out, code = run(t, cfg, "capsule-add", "only-two-args", "2025-04-20")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Usage: capsule-add <title> <open-on> <message>")
}

func TestLogin_VerifiesTokenBeforeSaving(t *testing.T) {
	cfg := withTempConfig(t, "")
	ts, _ := newTestServer(t, cfg.AuthSecret, time.Now())
	cfg.ServerURL = ts.URL

	out, code := run(t, cfg, "login", "garbage-token")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "rejected")
	_, err := tokenStore(cfg).Load()
	assert.Error(t, err)

	// токен, подписанный тем же секретом, принимается
	_, code = run(t, cfg, "dev-token", "someone")
	require.Equal(t, 0, code)
	tok, err := tokenStore(cfg).Load()
	require.NoError(t, err)
	require.NoError(t, tokenStore(cfg).Clear())

	out, code = run(t, cfg, "login", tok)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Logged in successfully")

	out, code = run(t, cfg, "logout")
	require.Equal(t, 0, code, out)
	_, err = tokenStore(cfg).Load()
	assert.Error(t, err)
}

func TestDecodeResponse_ServerErrorFallback(t *testing.T) {
	err := decodeResponse(http.StatusInternalServerError, []byte(`{"error":"internal error"}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server status 500")

	assert.ErrorIs(t, decodeResponse(http.StatusUnauthorized, nil, nil), ErrUnauthorized)
}
