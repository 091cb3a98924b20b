// Package sync реализует оркестратор синхронизации клиентского кэша
// с сервером: читает локальное и серверное состояние каждого домена,
// выполняет merge, сохраняет результат локально и публикует на сервер.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/iudanet/shopsync/internal/client/alerts"
	httpclient "github.com/iudanet/shopsync/internal/client/api"
	"github.com/iudanet/shopsync/internal/client/storage"
	"github.com/iudanet/shopsync/internal/merge"
	"github.com/iudanet/shopsync/internal/models"
)

// MaxSyncAge определяет порог устаревания watermark: если последняя
// успешная синхронизация была раньше, IsSyncNeeded возвращает true.
const MaxSyncAge = 5 * time.Minute

var (
	// ErrNoSession возвращается, когда на устройстве нет сохраненной сессии
	ErrNoSession = errors.New("no active session, login required")
	// ErrSessionExpired возвращается при истекшем access token
	ErrSessionExpired = errors.New("session expired, login required")
	// ErrUserMismatch возвращается, когда userID не совпадает с сессией
	ErrUserMismatch = errors.New("requested user does not match device session")
)

// Service - оркестратор синхронизации. Все операции идут через
// per-user mutex: две синхронизации одного пользователя не могут
// выполняться одновременно.
type Service struct {
	cache     *storage.Cache
	sessions  storage.SessionStorage
	apiClient httpclient.ClientAPI
	evaluator *alerts.Evaluator
	logger    *slog.Logger
	now       func() time.Time

	mu    stdsync.Mutex
	users map[string]*stdsync.Mutex
}

// NewService creates a sync orchestrator over the given collaborators
func NewService(
	cache *storage.Cache,
	sessions storage.SessionStorage,
	apiClient httpclient.ClientAPI,
	evaluator *alerts.Evaluator,
	logger *slog.Logger,
) *Service {
	return &Service{
		cache:     cache,
		sessions:  sessions,
		apiClient: apiClient,
		evaluator: evaluator,
		logger:    logger,
		now:       time.Now,
		users:     make(map[string]*stdsync.Mutex),
	}
}

// Result описывает исход одного прохода синхронизации
type Result struct {
	LastSync *time.Time                  // новый watermark; nil, если прошли не все домены
	Synced   []models.SyncDomain         // успешно синхронизированные домены
	Failed   map[models.SyncDomain]error // домены, завершившиеся ошибкой
	Skipped  map[models.SyncDomain]int   // записи, отброшенные merge по домену
	Alerts   alerts.Result               // счетчики evaluator-а price alerts
	Duration time.Duration
}

// Success сообщает, завершились ли все домены без ошибок
func (r *Result) Success() bool {
	return len(r.Failed) == 0
}

// Err собирает ошибки всех доменов в одну. Ошибка одного домена
// не прерывает остальные, поэтому их может быть несколько.
func (r *Result) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for _, domain := range models.SyncOrder() {
		if err, ok := r.Failed[domain]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", domain, err))
		}
	}
	return errors.Join(errs...)
}

// SyncUserData выполняет полный цикл синхронизации всех доменов
// пользователя в фиксированном порядке. Ошибка одного домена
// не останавливает остальные. Watermark обновляется только если
// все четыре домена завершились успешно.
func (s *Service) SyncUserData(ctx context.Context, userID string) (*Result, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.syncLocked(ctx, userID)
}

// ForceFullSync сбрасывает доменный кэш вместе с watermark и выполняет
// полную синхронизацию: локальное состояние заменяется серверным.
func (s *Service) ForceFullSync(ctx context.Context, userID string) (*Result, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.cache.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cache before full sync: %w", err)
	}
	s.logger.InfoContext(ctx, "Local cache cleared, starting full sync", "user_id", userID)

	return s.syncLocked(ctx, userID)
}

// IsSyncNeeded сообщает, устарел ли локальный кэш.
// True, если синхронизации еще не было или watermark старше MaxSyncAge.
func (s *Service) IsSyncNeeded(ctx context.Context) (bool, error) {
	state, err := s.cache.SyncState(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read sync state: %w", err)
	}
	return state.Stale(s.now(), MaxSyncAge), nil
}

// BackgroundSync - фоновый проход: синхронизирует только если кэш
// устарел, пропускает запуск при уже идущей синхронизации и никогда
// не возвращает ошибку - все сбои только логируются.
func (s *Service) BackgroundSync(ctx context.Context, userID string) {
	needed, err := s.IsSyncNeeded(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Background sync: failed to check staleness", "error", err)
		return
	}
	if !needed {
		s.logger.DebugContext(ctx, "Background sync skipped: cache is fresh")
		return
	}

	lock := s.userLock(userID)
	if !lock.TryLock() {
		s.logger.DebugContext(ctx, "Background sync skipped: sync already in progress", "user_id", userID)
		return
	}
	defer lock.Unlock()

	result, err := s.syncLocked(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "Background sync failed", "user_id", userID, "error", err)
		return
	}
	if !result.Success() {
		s.logger.WarnContext(ctx, "Background sync completed with errors",
			"user_id", userID, "error", result.Err())
	}
}

// RunBackground запускает периодический фоновый цикл синхронизации
// до отмены контекста
func (s *Service) RunBackground(ctx context.Context, userID string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "Background sync loop started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "Background sync loop stopped")
			return
		case <-ticker.C:
			s.BackgroundSync(ctx, userID)
		}
	}
}

// syncLocked выполняет сам проход. Вызывающая сторона держит
// per-user mutex.
func (s *Service) syncLocked(ctx context.Context, userID string) (*Result, error) {
	started := s.now()

	session, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Failed:  make(map[models.SyncDomain]error),
		Skipped: make(map[models.SyncDomain]int),
	}

	for _, domain := range models.SyncOrder() {
		var skipped int
		var domainErr error

		switch domain {
		case models.DomainCart:
			skipped, domainErr = s.syncCart(ctx, session.AccessToken)
		case models.DomainPreferences:
			domainErr = s.syncPreferences(ctx, session.AccessToken)
		case models.DomainFavorites:
			skipped, domainErr = s.syncFavorites(ctx, session.AccessToken)
		case models.DomainPriceAlerts:
			skipped, domainErr = s.syncPriceAlerts(ctx, session.AccessToken, result)
		}

		if domainErr != nil {
			s.logger.WarnContext(ctx, "Domain sync failed",
				"domain", domain,
				"error", domainErr)
			result.Failed[domain] = domainErr
			continue
		}
		if skipped > 0 {
			result.Skipped[domain] = skipped
		}
		result.Synced = append(result.Synced, domain)
	}

	result.Duration = s.now().Sub(started)

	// Watermark двигается только при полном успехе: частично
	// синхронизированный кэш должен остаться "устаревшим".
	if result.Success() {
		completed := s.now()
		if err := s.cache.SaveSyncState(ctx, completed); err != nil {
			return result, fmt.Errorf("failed to save sync watermark: %w", err)
		}
		result.LastSync = &completed
		s.logger.InfoContext(ctx, "Sync completed",
			"user_id", userID,
			"domains", len(result.Synced),
			"duration", result.Duration)
	} else {
		s.logger.WarnContext(ctx, "Sync completed with errors",
			"user_id", userID,
			"synced", len(result.Synced),
			"failed", len(result.Failed))
	}

	return result, nil
}

// session возвращает валидную сессию устройства для запрошенного userID
func (s *Service) session(ctx context.Context, userID string) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrUserMismatch
	}
	if !session.Valid(s.now()) {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// syncCart: кэш + сервер -> LWW merge -> кэш -> сервер
func (s *Service) syncCart(ctx context.Context, token string) (int, error) {
	local, err := s.cache.Cart(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cached cart: %w", err)
	}

	remoteAPI, err := s.apiClient.ReadCart(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch cart: %w", err)
	}

	merged, skipped := merge.LastWriteWins(local, models.CartFromAPI(remoteAPI))

	if err := s.cache.SaveCart(ctx, merged); err != nil {
		return skipped, fmt.Errorf("failed to save merged cart: %w", err)
	}
	if err := s.apiClient.UpsertCart(ctx, token, models.CartToAPI(merged)); err != nil {
		return skipped, fmt.Errorf("failed to push cart: %w", err)
	}
	return skipped, nil
}

// syncPreferences: shallow overlay, локальные значения побеждают по ключу
func (s *Service) syncPreferences(ctx context.Context, token string) error {
	local, err := s.cache.Preferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cached preferences: %w", err)
	}

	remote, err := s.apiClient.ReadPreferences(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch preferences: %w", err)
	}

	merged := merge.Preferences(local, models.Preferences(remote))

	if err := s.cache.SavePreferences(ctx, merged); err != nil {
		return fmt.Errorf("failed to save merged preferences: %w", err)
	}
	if err := s.apiClient.UpsertPreferences(ctx, token, merged); err != nil {
		return fmt.Errorf("failed to push preferences: %w", err)
	}
	return nil
}

// syncFavorites: кэш + сервер -> LWW merge -> кэш -> сервер
func (s *Service) syncFavorites(ctx context.Context, token string) (int, error) {
	local, err := s.cache.Favorites(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cached favorites: %w", err)
	}

	remoteAPI, err := s.apiClient.ReadFavorites(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	merged, skipped := merge.LastWriteWins(local, models.FavoritesFromAPI(remoteAPI))

	if err := s.cache.SaveFavorites(ctx, merged); err != nil {
		return skipped, fmt.Errorf("failed to save merged favorites: %w", err)
	}
	if err := s.apiClient.UpsertFavorites(ctx, token, models.FavoritesToAPI(merged)); err != nil {
		return skipped, fmt.Errorf("failed to push favorites: %w", err)
	}
	return skipped, nil
}

// syncPriceAlerts: merge с защитой Triggered, затем evaluator по живым
// ценам, затем сохранение и push итогового состояния
func (s *Service) syncPriceAlerts(ctx context.Context, token string, result *Result) (int, error) {
	local, err := s.cache.PriceAlerts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cached alerts: %w", err)
	}

	remoteAPI, err := s.apiClient.ReadPriceAlerts(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price alerts: %w", err)
	}

	merged, skipped := merge.PriceAlerts(local, models.AlertsFromAPI(remoteAPI))

	// Evaluator мутирует merged на месте: сработавшие alerts
	// переходят в Triggered до записи в кэш
	result.Alerts = s.evaluator.Evaluate(ctx, token, merged)

	if err := s.cache.SavePriceAlerts(ctx, merged); err != nil {
		return skipped, fmt.Errorf("failed to save merged alerts: %w", err)
	}
	if err := s.apiClient.UpsertPriceAlerts(ctx, token, models.AlertsToAPI(merged)); err != nil {
		return skipped, fmt.Errorf("failed to push price alerts: %w", err)
	}
	return skipped, nil
}

// userLock возвращает mutex конкретного пользователя, создавая при
// первом обращении
func (s *Service) userLock(userID string) *stdsync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.users[userID]
	if !ok {
		lock = &stdsync.Mutex{}
		s.users[userID] = lock
	}
	return lock
}
