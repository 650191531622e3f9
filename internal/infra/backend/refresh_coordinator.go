package backend

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Hard logout reasons, published on the session-expired event.
const (
	ReasonRefreshFailed        = "refresh_failed"
	ReasonNoRefreshToken       = "no_refresh_token"
	ReasonRejectedAfterRefresh = "rejected_after_refresh"
)

type refreshResult struct {
	token string
	err   error
}

// RefreshCoordinator guarantees at most one refresh call in flight.
// Callers arriving while a refresh runs are queued and resumed in arrival order
// with the same outcome. A failed refresh ends the session.
type RefreshCoordinator struct {
	// storeMu orders token persistence and session events against login and logout.
	// It is always taken before mu.
	storeMu sync.Mutex

	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshResult
	// epoch changes on every login, logout and hard logout; a refresh started in an older epoch is discarded
	epoch uint64

	auth    service.AuthAPI
	creds   *Credentials
	tokens  repository.TokenRepository
	events  service.EventBus
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// RefreshCoordinatorParams holds dependencies for RefreshCoordinator, injected by Fx
type RefreshCoordinatorParams struct {
	fx.In

	Auth    service.AuthAPI
	Creds   *Credentials
	Tokens  repository.TokenRepository
	Events  service.EventBus
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

var _ service.SessionManager = (*RefreshCoordinator)(nil)

// NewRefreshCoordinator is the constructor for RefreshCoordinator
func NewRefreshCoordinator(params RefreshCoordinatorParams) *RefreshCoordinator {
	return &RefreshCoordinator{
		auth:    params.Auth,
		creds:   params.Creds,
		tokens:  params.Tokens,
		events:  params.Events,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Refresh repairs a request rejected with staleToken. If another refresh already
// replaced staleToken, the current token is returned without a network call.
func (c *RefreshCoordinator) Refresh(ctx context.Context, staleToken string) (string, error) {
	return c.refresh(ctx, staleToken, metrics.TriggerReactive)
}

// RefreshNow renews the access token regardless of its age. Used by the proactive timer.
func (c *RefreshCoordinator) RefreshNow(ctx context.Context) (string, error) {
	return c.refresh(ctx, "", metrics.TriggerProactive)
}

func (c *RefreshCoordinator) refresh(ctx context.Context, staleToken, trigger string) (string, error) {
	c.mu.Lock()

	if trigger == metrics.TriggerReactive {
		if current := c.creds.AccessToken(); current != "" && current != staleToken {
			c.mu.Unlock()
			c.metrics.ObserveRefresh(trigger, metrics.OutcomeSkipped)

			return current, nil
		}
	}

	if c.refreshing {
		waiter := make(chan refreshResult, 1)
		c.waiters = append(c.waiters, waiter)
		c.mu.Unlock()
		c.metrics.ObserveRefresh(trigger, metrics.OutcomeJoined)

		select {
		case result := <-waiter:
			return result.token, result.err
		case <-ctx.Done():
			return "", errors.WithStack(ctx.Err())
		}
	}

	session := c.creds.Get()
	if !session.CanRefresh() {
		c.mu.Unlock()
		if trigger == metrics.TriggerProactive {
			return "", errors.WithStack(domainerrors.ErrLoginRequired)
		}
		c.ForceLogout(ctx, ReasonNoRefreshToken)

		return "", errors.WithStack(domainerrors.ErrSessionExpired)
	}

	c.refreshing = true
	epoch := c.epoch
	c.mu.Unlock()

	log := c.log(ctx)
	log.Debug("Refreshing access token", slog.String("trigger", trigger))

	// The refresh outlives the caller that triggered it: a torn-down view must not turn into a logout.
	pair, err := c.auth.RefreshTokens(context.WithoutCancel(ctx), session.RefreshToken)
	if err != nil {
		c.metrics.ObserveRefresh(trigger, metrics.OutcomeFailure)
		log.Warn("Token refresh failed, ending session", slog.String("trigger", trigger), slog.Any("error", err))

		failure := errors.Wrap(domainerrors.ErrSessionExpired.WithDetails(err.Error()), "refresh failed")
		c.fail(ctx, epoch, failure)

		return "", failure
	}

	next := session.Rotate(*pair)

	c.storeMu.Lock()
	c.mu.Lock()
	if c.epoch != epoch {
		// login or logout happened meanwhile; these tokens belong to a session that no longer exists
		waiters := c.drain()
		c.mu.Unlock()
		c.storeMu.Unlock()
		stale := errors.WithStack(domainerrors.ErrSessionExpired)
		notify(waiters, refreshResult{err: stale})

		return "", stale
	}
	c.creds.Set(next)
	waiters := c.drain()
	c.mu.Unlock()

	err = c.tokens.Save(ctx, next)
	c.storeMu.Unlock()
	if err != nil {
		log.Warn("Refreshed tokens not persisted", slog.Any("error", err))
	}

	c.metrics.ObserveRefresh(trigger, metrics.OutcomeSuccess)
	notify(waiters, refreshResult{token: next.AccessToken})
	log.Debug("Access token refreshed",
		slog.String("trigger", trigger),
		slog.Bool("rotated", pair.Refresh != ""),
		slog.Int("waiters", len(waiters)),
	)

	return next.AccessToken, nil
}

// fail resumes every waiter with err and tears the session down
func (c *RefreshCoordinator) fail(ctx context.Context, epoch uint64, err error) {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	c.mu.Lock()
	waiters := c.drain()
	current := c.epoch == epoch
	had := false
	if current {
		had = c.creds.Clear()
		c.epoch++
	}
	c.mu.Unlock()

	notify(waiters, refreshResult{err: err})

	if current {
		c.teardown(ctx, ReasonRefreshFailed, had)
	}
}

// ForceLogout ends the session without contacting the backend
func (c *RefreshCoordinator) ForceLogout(ctx context.Context, reason string) {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	c.mu.Lock()
	had := c.creds.Clear()
	c.epoch++
	c.mu.Unlock()

	c.teardown(ctx, reason, had)
}

// teardown clears the store and announces the end of the session; caller holds storeMu
func (c *RefreshCoordinator) teardown(ctx context.Context, reason string, hadSession bool) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.log(ctx).Warn("Stored tokens not cleared", slog.Any("error", err))
	}

	if !hadSession {
		return
	}

	c.metrics.ObserveForcedLogout(reason)
	c.log(ctx).Info("Session ended", slog.String("reason", reason))
	c.events.Publish(ctx, entity.Event{Kind: entity.EventSessionExpired, Reason: reason})
}

// Install makes session current, e.g. after login or restore
func (c *RefreshCoordinator) Install(ctx context.Context, session entity.Session, persist bool) error {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	c.mu.Lock()
	c.epoch++
	c.creds.Set(session)
	c.mu.Unlock()

	if !persist {
		return nil
	}

	return errors.Wrap(c.tokens.Save(ctx, session), "persist session")
}

// Reset ends the session quietly, for an explicit logout
func (c *RefreshCoordinator) Reset(ctx context.Context) error {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	c.mu.Lock()
	c.epoch++
	c.creds.Clear()
	c.mu.Unlock()

	return errors.Wrap(c.tokens.Clear(ctx), "clear stored tokens")
}

// Session returns the current credentials
func (c *RefreshCoordinator) Session() entity.Session {
	return c.creds.Get()
}

// IsRefreshing reports whether a refresh call is in flight
func (c *RefreshCoordinator) IsRefreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refreshing
}

// drain clears the flag and hands back the queue; caller holds mu
func (c *RefreshCoordinator) drain() []chan refreshResult {
	waiters := c.waiters
	c.waiters = nil
	c.refreshing = false

	return waiters
}

func notify(waiters []chan refreshResult, result refreshResult) {
	for _, waiter := range waiters {
		waiter <- result
	}
}

func (c *RefreshCoordinator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}
