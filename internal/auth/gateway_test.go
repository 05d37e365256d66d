package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

type fakeProvider struct {
	signUpSession *ProviderSession
	signUpErr     error
	signInSession *ProviderSession
	signInErr     error
	signOutErr    error
	resetErr      error
	current       *ProviderSession
	currentErr    error
	events        chan SessionEvent

	signOutCalls int
	profiles     []Profile
	profileErr   error
	resetEmails  []string
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*ProviderSession, error) {
	return f.signUpSession, f.signUpErr
}

func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (*ProviderSession, error) {
	return f.signInSession, f.signInErr
}

func (f *fakeProvider) SignOut(ctx context.Context, accessToken string) error {
	f.signOutCalls++
	return f.signOutErr
}

func (f *fakeProvider) ResetPassword(ctx context.Context, email string) error {
	f.resetEmails = append(f.resetEmails, email)
	return f.resetErr
}

func (f *fakeProvider) CurrentSession(ctx context.Context) (*ProviderSession, error) {
	return f.current, f.currentErr
}

func (f *fakeProvider) InsertProfile(ctx context.Context, profile Profile) error {
	f.profiles = append(f.profiles, profile)
	return f.profileErr
}

func (f *fakeProvider) Events(ctx context.Context) (<-chan SessionEvent, error) {
	if f.events == nil {
		return nil, nil
	}
	return f.events, nil
}

func sessionFor(id, email string) *ProviderSession {
	return &ProviderSession{
		Token: oauth2.Token{AccessToken: "token-" + id},
		User:  &ProviderUser{ID: id, Email: email},
	}
}

func TestGatewayDisabledOperations(t *testing.T) {
	g := NewWithProvider(nil, nil)
	ctx := context.Background()

	assert.False(t, g.Enabled())
	assert.False(t, g.IsAuthenticated())

	err := g.SignIn(ctx, "a@example.com", "pw")
	assert.True(t, domain.IsAuthNotConfigured(err))
	err = g.SignUp(ctx, "a@example.com", "pw", "A")
	assert.True(t, domain.IsAuthNotConfigured(err))
	err = g.ResetPassword(ctx, "a@example.com")
	assert.True(t, domain.IsAuthNotConfigured(err))

	// Signing out while disabled is a silent no-op.
	assert.NoError(t, g.SignOut(ctx))
}

func TestGatewaySignIn(t *testing.T) {
	provider := &fakeProvider{signInSession: sessionFor("user-1", "a@example.com")}
	g := NewWithProvider(provider, nil)

	require.NoError(t, g.SignIn(context.Background(), "a@example.com", "pw"))
	assert.True(t, g.IsAuthenticated())
	assert.Equal(t, "user-1", g.CurrentUserID())
	assert.Equal(t, "a@example.com", g.CurrentUserEmail())
}

func TestGatewaySignInNilSessionStaysSignedOut(t *testing.T) {
	provider := &fakeProvider{}
	g := NewWithProvider(provider, nil)

	var sessions []domain.Session
	g.Subscribe(func(session domain.Session) {
		sessions = append(sessions, session)
	})

	require.NoError(t, g.SignIn(context.Background(), "a@example.com", "pw"))
	assert.False(t, g.IsAuthenticated())
	assert.Empty(t, g.CurrentUserID())
	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].Authenticated)
}

func TestGatewaySignInRejection(t *testing.T) {
	provider := &fakeProvider{signInErr: domain.NewAuthError("SIGN_IN_FAILED", "Invalid login credentials")}
	g := NewWithProvider(provider, nil)

	err := g.SignIn(context.Background(), "a@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, domain.IsAuthError(err))

	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Invalid login credentials", de.UserMessage())
	assert.False(t, g.IsAuthenticated())
}

func TestGatewaySignUpInsertsProfile(t *testing.T) {
	provider := &fakeProvider{signUpSession: sessionFor("user-2", "b@example.com")}
	g := NewWithProvider(provider, nil)

	require.NoError(t, g.SignUp(context.Background(), "b@example.com", "pw", "Bea"))
	require.Len(t, provider.profiles, 1)
	assert.Equal(t, "user-2", provider.profiles[0].ID)
	assert.Equal(t, "b@example.com", provider.profiles[0].Email)
	assert.Equal(t, "Bea", provider.profiles[0].FullName)
	assert.True(t, g.IsAuthenticated())
}

func TestGatewaySignUpWithoutSessionStaysSignedOut(t *testing.T) {
	// Email-confirmation flows return a user but no token yet.
	provider := &fakeProvider{signUpSession: &ProviderSession{User: &ProviderUser{ID: "user-3", Email: "c@example.com"}}}
	g := NewWithProvider(provider, nil)

	require.NoError(t, g.SignUp(context.Background(), "c@example.com", "pw", "Cy"))
	require.Len(t, provider.profiles, 1)
	assert.False(t, g.IsAuthenticated())
}

func TestGatewaySignOutBestEffort(t *testing.T) {
	provider := &fakeProvider{
		signInSession: sessionFor("user-1", "a@example.com"),
		signOutErr:    errors.New("provider unavailable"),
	}
	g := NewWithProvider(provider, nil)
	require.NoError(t, g.SignIn(context.Background(), "a@example.com", "pw"))

	var notifications []domain.Session
	unsubscribe := g.Subscribe(func(s domain.Session) {
		notifications = append(notifications, s)
	})
	defer unsubscribe()

	// The provider failure is absorbed: the local session is cleared and
	// exactly one change notification fires.
	err := g.SignOut(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, provider.signOutCalls)
	assert.False(t, g.IsAuthenticated())
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Authenticated)
}

func TestGatewaySubscribeNotifyOrder(t *testing.T) {
	provider := &fakeProvider{signInSession: sessionFor("user-1", "a@example.com")}
	g := NewWithProvider(provider, nil)

	var order []string
	g.Subscribe(func(s domain.Session) { order = append(order, "first") })
	g.Subscribe(func(s domain.Session) { order = append(order, "second") })

	require.NoError(t, g.SignIn(context.Background(), "a@example.com", "pw"))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestGatewayUnsubscribeStopsDelivery(t *testing.T) {
	provider := &fakeProvider{signInSession: sessionFor("user-1", "a@example.com")}
	g := NewWithProvider(provider, nil)

	calls := 0
	unsubscribe := g.Subscribe(func(s domain.Session) { calls++ })

	require.NoError(t, g.SignIn(context.Background(), "a@example.com", "pw"))
	assert.Equal(t, 1, calls)

	unsubscribe()
	require.NoError(t, g.SignOut(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestGatewayRestoreSession(t *testing.T) {
	provider := &fakeProvider{current: sessionFor("user-9", "restored@example.com")}
	g := NewWithProvider(provider, nil)

	require.NoError(t, g.RestoreSession(context.Background()))
	assert.True(t, g.IsAuthenticated())
	assert.Equal(t, "user-9", g.CurrentUserID())
}

func TestGatewayRestoreSessionAbsent(t *testing.T) {
	provider := &fakeProvider{}
	g := NewWithProvider(provider, nil)

	require.NoError(t, g.RestoreSession(context.Background()))
	assert.False(t, g.IsAuthenticated())
}

func TestGatewayEventStreamDrivesSession(t *testing.T) {
	events := make(chan SessionEvent)
	provider := &fakeProvider{events: events}
	g := NewWithProvider(provider, nil)
	require.NoError(t, g.RestoreSession(context.Background()))

	signedIn := make(chan domain.Session, 2)
	g.Subscribe(func(s domain.Session) { signedIn <- s })

	events <- SessionEvent{Type: EventSignedIn, Session: sessionFor("user-5", "e@example.com")}
	session := <-signedIn
	assert.True(t, session.Authenticated)
	assert.Equal(t, "user-5", session.UserID)

	events <- SessionEvent{Type: EventSignedOut}
	session = <-signedIn
	assert.False(t, session.Authenticated)
	close(events)
}

func TestGatewayResetPasswordPassthrough(t *testing.T) {
	provider := &fakeProvider{}
	g := NewWithProvider(provider, nil)

	require.NoError(t, g.ResetPassword(context.Background(), "a@example.com"))
	assert.Equal(t, []string{"a@example.com"}, provider.resetEmails)
}

func TestGatewayIdentityFromTokenClaims(t *testing.T) {
	// Session without an explicit user object falls back to token claims.
	// Claims: {"sub": "user-7", "email": "claims@example.com"}, unsigned.
	token := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJzdWIiOiJ1c2VyLTciLCJlbWFpbCI6ImNsYWltc0BleGFtcGxlLmNvbSJ9."
	provider := &fakeProvider{signInSession: &ProviderSession{Token: oauth2.Token{AccessToken: token}}}
	g := NewWithProvider(provider, nil)

	require.NoError(t, g.SignIn(context.Background(), "claims@example.com", "pw"))
	assert.Equal(t, "user-7", g.CurrentUserID())
	assert.Equal(t, "claims@example.com", g.CurrentUserEmail())
}
