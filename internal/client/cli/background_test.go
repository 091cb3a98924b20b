package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shopsync/internal/client/alerts"
	httpclient "github.com/iudanet/shopsync/internal/client/api"
	"github.com/iudanet/shopsync/internal/client/auth"
	"github.com/iudanet/shopsync/internal/client/notify"
	"github.com/iudanet/shopsync/internal/client/storage"
	"github.com/iudanet/shopsync/internal/client/sync"
)

type sessionStub struct {
	session *storage.Session
	err     error
}

func (s *sessionStub) SaveSession(ctx context.Context, session *storage.Session) error {
	s.session = session
	return s.err
}

func (s *sessionStub) GetSession(ctx context.Context) (*storage.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func (s *sessionStub) DeleteSession(ctx context.Context) error {
	s.session = nil
	return s.err
}

// newBackgroundCli собирает Cli с настоящими auth и sync сервисами.
// Watermark в кэше свежий, поэтому фоновый проход завершается без
// обращений к серверу (nil-функции ClientAPIMock паникуют при вызове).
func newBackgroundCli(t *testing.T) (*Cli, *sessionStub, *strings.Builder) {
	t.Helper()

	mockIO, out := collectIO()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := &storage.LocalStoreMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return time.Now().UTC().Format(time.RFC3339), nil
		},
	}
	cache := storage.NewCache(store)

	apiClient := &httpclient.ClientAPIMock{}
	sessions := &sessionStub{session: &storage.Session{
		UserID:      "user-1",
		Username:    "alice",
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}}

	evaluator := alerts.NewEvaluator(apiClient, notify.NewLogDispatcher(logger), logger)
	syncService := sync.NewService(cache, sessions, apiClient, evaluator, logger)
	authService := auth.NewService(apiClient, sessions, logger)

	return &Cli{io: mockIO, authService: authService, syncService: syncService}, sessions, out
}

func TestRunBackgroundSync_OneShot(t *testing.T) {
	cli, _, out := newBackgroundCli(t)

	require.NoError(t, cli.runBackgroundSync(context.Background(), nil))
	assert.Contains(t, out.String(), "Done")
}

func TestRunBackgroundSync_NoSession(t *testing.T) {
	cli, sessions, _ := newBackgroundCli(t)
	sessions.err = storage.ErrSessionNotFound

	err := cli.runBackgroundSync(context.Background(), nil)
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestRunBackgroundSync_InvalidInterval(t *testing.T) {
	cli, _, _ := newBackgroundCli(t)
	ctx := context.Background()

	assert.Error(t, cli.runBackgroundSync(ctx, []string{"soon"}))
	assert.Error(t, cli.runBackgroundSync(ctx, []string{"-1m"}))
	assert.Error(t, cli.runBackgroundSync(ctx, []string{"0s"}))
}

func TestRunBackgroundSync_LoopStopsOnContextCancel(t *testing.T) {
	cli, _, out := newBackgroundCli(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- cli.runBackgroundSync(ctx, []string{"10ms"})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("background loop did not stop after context cancellation")
	}
	assert.Contains(t, out.String(), "Background sync loop started")
}
