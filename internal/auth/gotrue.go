package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

// GoTrueProvider talks to a Supabase-style identity service: GoTrue auth
// endpoints under /auth/v1 and the REST profile table under /rest/v1.
type GoTrueProvider struct {
	baseURL    string
	anonKey    string
	eventsURL  string
	httpClient *http.Client
	store      TokenStore
	logger     *slog.Logger
}

// NewGoTrueProvider creates a provider client for the given project URL and
// public API key.
func NewGoTrueProvider(baseURL, anonKey, eventsURL string, store TokenStore, logger *slog.Logger) *GoTrueProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoTrueProvider{
		baseURL:   baseURL,
		anonKey:   anonKey,
		eventsURL: eventsURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store:  store,
		logger: logger,
	}
}

// sessionEnvelope is the GoTrue token/signup response shape.
type sessionEnvelope struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *ProviderUser `json:"user"`
	// Signup without auto-confirm returns the bare user object instead.
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (e *sessionEnvelope) session() *ProviderSession {
	ps := &ProviderSession{User: e.User}
	if e.AccessToken != "" {
		ps.Token = oauth2.Token{
			AccessToken:  e.AccessToken,
			RefreshToken: e.RefreshToken,
			TokenType:    e.TokenType,
		}
		if e.ExpiresIn > 0 {
			ps.Token.Expiry = time.Now().Add(time.Duration(e.ExpiresIn) * time.Second)
		}
	}
	if ps.User == nil && e.ID != "" {
		ps.User = &ProviderUser{ID: e.ID, Email: e.Email}
	}
	if ps.User == nil {
		ps.User = userFromToken(e.AccessToken)
	}
	return ps
}

// SignUp registers a new account. Display metadata rides along as GoTrue
// user data.
func (p *GoTrueProvider) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*ProviderSession, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		body["data"] = metadata
	}
	var envelope sessionEnvelope
	if err := p.do(ctx, http.MethodPost, "/auth/v1/signup", body, "", &envelope, "SIGN_UP_FAILED"); err != nil {
		return nil, err
	}
	session := envelope.session()
	p.persist(session)
	return session, nil
}

// SignIn exchanges credentials for a session via the password grant.
func (p *GoTrueProvider) SignIn(ctx context.Context, email, password string) (*ProviderSession, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	var envelope sessionEnvelope
	if err := p.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", body, "", &envelope, "SIGN_IN_FAILED"); err != nil {
		return nil, err
	}
	session := envelope.session()
	p.persist(session)
	return session, nil
}

// SignOut revokes the session at the provider. The persisted token is
// cleared regardless of the provider outcome.
func (p *GoTrueProvider) SignOut(ctx context.Context, accessToken string) error {
	err := p.do(ctx, http.MethodPost, "/auth/v1/logout", nil, accessToken, nil, "SIGN_OUT_FAILED")
	if p.store != nil {
		if clearErr := p.store.ClearToken(); clearErr != nil {
			p.logger.Warn("failed to clear persisted token", "error", clearErr)
		}
	}
	return err
}

// ResetPassword asks the provider to send a recovery email.
func (p *GoTrueProvider) ResetPassword(ctx context.Context, email string) error {
	return p.do(ctx, http.MethodPost, "/auth/v1/recover", map[string]interface{}{"email": email}, "", nil, "PASSWORD_RESET_FAILED")
}

// CurrentSession restores the persisted session, confirming the token is
// still accepted by the provider.
func (p *GoTrueProvider) CurrentSession(ctx context.Context) (*ProviderSession, error) {
	if p.store == nil {
		return nil, nil
	}
	token, err := p.store.LoadToken()
	if err != nil || token == nil || token.AccessToken == "" {
		return nil, err
	}
	var user ProviderUser
	if err := p.do(ctx, http.MethodGet, "/auth/v1/user", nil, token.AccessToken, &user, "SESSION_RESTORE_FAILED"); err != nil {
		return nil, err
	}
	return &ProviderSession{Token: *token, User: &user}, nil
}

// InsertProfile writes the application profile row for a new account.
func (p *GoTrueProvider) InsertProfile(ctx context.Context, profile Profile) error {
	return p.do(ctx, http.MethodPost, "/rest/v1/users", []Profile{profile}, "", nil, "PROFILE_CREATE_FAILED")
}

// persist stores a token-bearing session for later restoration.
func (p *GoTrueProvider) persist(session *ProviderSession) {
	if p.store == nil || session == nil || session.Token.AccessToken == "" {
		return
	}
	if err := p.store.SaveToken(&session.Token); err != nil {
		p.logger.Warn("failed to persist session token", "error", err)
	}
}

// do issues one provider call and maps rejections to AuthError carrying the
// provider's message verbatim.
func (p *GoTrueProvider) do(ctx context.Context, method, path string, body interface{}, bearer string, result interface{}, failCode string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return domain.NewInternalError("PROVIDER_ENCODE_FAILED", "failed to encode provider request", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return domain.NewAuthError(failCode, err.Error())
	}
	req.Header.Set("apikey", p.anonKey)
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer == "" {
		bearer = p.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.NewAuthError(failCode, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewAuthError(failCode, err.Error())
	}

	if resp.StatusCode >= 300 {
		return domain.NewAuthError(failCode, providerMessage(data, resp.StatusCode))
	}

	if result != nil && len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return domain.NewAuthError(failCode, "unexpected provider response")
		}
	}
	return nil
}

// providerMessage extracts the human-readable rejection reason from a GoTrue
// or PostgREST error body.
func providerMessage(body []byte, status int) string {
	var parsed struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		switch {
		case parsed.ErrorDescription != "":
			return parsed.ErrorDescription
		case parsed.Msg != "":
			return parsed.Msg
		case parsed.Message != "":
			return parsed.Message
		}
	}
	return fmt.Sprintf("provider returned status %d", status)
}
