package auth

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/oauth2"

	"github.com/ecocode-app/ecocode-cli/internal/config"
	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

// Handler receives the new Session after every session change.
type Handler func(session domain.Session)

type subscriber struct {
	id      int
	handler Handler
}

// Gateway maintains the current Session on top of an identity provider.
// When no provider is configured the gateway is disabled: mutating
// operations return AuthNotConfigured and reads report signed-out.
//
// Session-changed notifications are delivered at-least-once, in the order
// operations were invoked, and never reentrantly for the same handler.
type Gateway struct {
	provider Provider
	logger   *slog.Logger
	enabled  bool

	mu      sync.RWMutex
	session domain.Session
	token   *oauth2.Token

	subMu  sync.Mutex
	subs   []subscriber
	nextID int

	// dispatchMu serializes handler invocation so a handler is never
	// invoked while another invocation of it is still in progress.
	dispatchMu sync.Mutex
}

// New constructs the gateway from configuration. Missing provider
// credentials leave it disabled instead of failing the host application.
func New(cfg config.AuthConfig, store TokenStore, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Gateway{logger: logger}
	if cfg.GetProviderURL() == "" || cfg.GetProviderAnonKey() == "" {
		logger.Debug("identity provider not configured, auth disabled")
		return g
	}
	g.provider = NewGoTrueProvider(cfg.GetProviderURL(), cfg.GetProviderAnonKey(), cfg.GetProviderEventsURL(), store, logger)
	g.enabled = true
	return g
}

// NewWithProvider wires an explicit provider implementation (tests, local
// stubs). A nil provider yields a disabled gateway.
func NewWithProvider(provider Provider, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{provider: provider, logger: logger, enabled: provider != nil}
}

// Enabled reports whether an identity provider is configured.
func (g *Gateway) Enabled() bool {
	return g.enabled
}

// RestoreSession looks up an existing provider session at startup and then
// keeps listening for provider-pushed session changes for the rest of the
// process lifetime. Listener failures degrade to log lines.
func (g *Gateway) RestoreSession(ctx context.Context) error {
	if !g.enabled {
		return nil
	}
	session, err := g.provider.CurrentSession(ctx)
	switch {
	case err != nil:
		g.logger.Debug("no restorable session", "error", err)
	case session != nil:
		g.setSession(session)
	}

	events, err := g.provider.Events(ctx)
	if err != nil {
		g.logger.Warn("session event stream unavailable", "error", err)
		return nil
	}
	if events != nil {
		go g.listen(events)
	}
	return nil
}

// listen applies pushed session changes: session present means signed in,
// absent means signed out. One notification per provider event.
func (g *Gateway) listen(events <-chan SessionEvent) {
	for event := range events {
		g.logger.Debug("session event", "type", event.Type)
		if event.Session != nil {
			g.setSession(event.Session)
		} else {
			g.clearSession()
		}
	}
}

// SignUp registers a new account and writes its profile record. The
// provider's rejection message is passed through verbatim.
func (g *Gateway) SignUp(ctx context.Context, email, password, displayName string) error {
	if !g.enabled {
		return domain.NewAuthNotConfiguredError()
	}
	session, err := g.provider.SignUp(ctx, email, password, map[string]string{"full_name": displayName})
	if err != nil {
		return err
	}
	if user := sessionUser(session); user != nil {
		profile := Profile{ID: user.ID, Email: user.Email, FullName: displayName}
		if err := g.provider.InsertProfile(ctx, profile); err != nil {
			return err
		}
	}
	if session != nil && session.Token.AccessToken != "" {
		g.setSession(session)
	}
	return nil
}

// SignIn authenticates with email and password.
func (g *Gateway) SignIn(ctx context.Context, email, password string) error {
	if !g.enabled {
		return domain.NewAuthNotConfiguredError()
	}
	session, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	g.setSession(session)
	return nil
}

// SignOut clears the session. Best effort: the local session is cleared and
// exactly one change notification is emitted even when the provider call
// fails.
func (g *Gateway) SignOut(ctx context.Context) error {
	if !g.enabled {
		return nil
	}
	g.mu.RLock()
	accessToken := ""
	if g.token != nil {
		accessToken = g.token.AccessToken
	}
	g.mu.RUnlock()

	if err := g.provider.SignOut(ctx, accessToken); err != nil {
		g.logger.Warn("provider sign-out failed", "error", err)
	}
	g.clearSession()
	return nil
}

// ResetPassword asks the provider to start password recovery.
func (g *Gateway) ResetPassword(ctx context.Context, email string) error {
	if !g.enabled {
		return domain.NewAuthNotConfiguredError()
	}
	return g.provider.ResetPassword(ctx, email)
}

// IsAuthenticated reports whether a session is active. Never errors.
func (g *Gateway) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session.Authenticated
}

// CurrentUserID returns the signed-in user id, or "" when signed out.
func (g *Gateway) CurrentUserID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session.UserID
}

// CurrentUserEmail returns the signed-in email, or "" when signed out.
func (g *Gateway) CurrentUserEmail() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session.Email
}

// CurrentSession returns a copy of the current session value.
func (g *Gateway) CurrentSession() domain.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

// Subscribe registers a session-changed handler and returns its
// cancellation function.
func (g *Gateway) Subscribe(handler Handler) func() {
	g.subMu.Lock()
	g.nextID++
	id := g.nextID
	g.subs = append(g.subs, subscriber{id: id, handler: handler})
	g.subMu.Unlock()

	return func() {
		g.subMu.Lock()
		defer g.subMu.Unlock()
		for i, sub := range g.subs {
			if sub.id == id {
				g.subs = append(g.subs[:i], g.subs[i+1:]...)
				return
			}
		}
	}
}

func (g *Gateway) setSession(session *ProviderSession) {
	if session == nil {
		g.clearSession()
		return
	}
	user := sessionUser(session)
	g.mu.Lock()
	if user != nil {
		g.session = domain.Session{UserID: user.ID, Email: user.Email, Authenticated: true}
	} else {
		g.session = domain.Session{Authenticated: true}
	}
	token := session.Token
	g.token = &token
	g.mu.Unlock()
	g.notify()
}

func (g *Gateway) clearSession() {
	g.mu.Lock()
	g.session = domain.Anonymous()
	g.token = nil
	g.mu.Unlock()
	g.notify()
}

// notify delivers the current session to all subscribers in registration
// order. dispatchMu keeps handler invocations non-reentrant.
func (g *Gateway) notify() {
	g.subMu.Lock()
	subs := make([]subscriber, len(g.subs))
	copy(subs, g.subs)
	g.subMu.Unlock()

	session := g.CurrentSession()
	g.dispatchMu.Lock()
	defer g.dispatchMu.Unlock()
	for _, sub := range subs {
		sub.handler(session)
	}
}

func sessionUser(session *ProviderSession) *ProviderUser {
	if session == nil {
		return nil
	}
	if session.User != nil {
		return session.User
	}
	return userFromToken(session.Token.AccessToken)
}
