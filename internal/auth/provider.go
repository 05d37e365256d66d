// Package auth bridges the application to a hosted identity provider. The
// gateway owns the current Session; everything else reads it through
// accessors and the session-changed subscription.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// ProviderUser identifies the signed-in account at the provider.
type ProviderUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProviderSession is a provider-issued session. The token may be empty for
// sign-ups that require email confirmation before a session exists.
type ProviderSession struct {
	Token oauth2.Token
	User  *ProviderUser
}

// SessionEvent is one provider-pushed session change. A nil Session means
// the provider considers the user signed out.
type SessionEvent struct {
	Type    string
	Session *ProviderSession
}

// Profile is the application profile record written alongside a new account.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Provider is the external identity provider contract. Implementations map
// provider rejections to domain.AuthError with the provider's own message.
type Provider interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*ProviderSession, error)
	SignIn(ctx context.Context, email, password string) (*ProviderSession, error)
	SignOut(ctx context.Context, accessToken string) error
	ResetPassword(ctx context.Context, email string) error

	// CurrentSession restores a previously persisted session, returning
	// nil when none exists.
	CurrentSession(ctx context.Context) (*ProviderSession, error)

	// InsertProfile writes the profile record keyed by the new user id.
	InsertProfile(ctx context.Context, profile Profile) error

	// Events opens the provider-pushed session change stream. A nil
	// channel with nil error means push events are not available.
	Events(ctx context.Context) (<-chan SessionEvent, error)
}

// TokenStore persists provider tokens between process runs.
type TokenStore interface {
	LoadToken() (*oauth2.Token, error)
	SaveToken(token *oauth2.Token) error
	ClearToken() error
}

// userFromToken recovers the user identity from the access token claims when
// the provider response omits the user object. The token is provider-signed;
// the client has no verification key and only reads claims.
func userFromToken(accessToken string) *ProviderUser {
	if accessToken == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil
	}
	user := &ProviderUser{}
	if sub, err := claims.GetSubject(); err == nil {
		user.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if user.ID == "" && user.Email == "" {
		return nil
	}
	return user
}
