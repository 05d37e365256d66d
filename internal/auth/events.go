package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/oauth2"
)

// Session change events the provider pushes over the event stream.
const (
	EventSignedIn       = "SIGNED_IN"
	EventSignedOut      = "SIGNED_OUT"
	EventTokenRefreshed = "TOKEN_REFRESHED"
)

// eventMessage is the wire shape of one pushed session change.
type eventMessage struct {
	Event   string `json:"event"`
	Session *struct {
		AccessToken  string        `json:"access_token"`
		RefreshToken string        `json:"refresh_token"`
		User         *ProviderUser `json:"user"`
	} `json:"session"`
}

// Events opens the provider websocket and streams session changes until the
// context is cancelled or the connection drops. Each pushed provider event
// produces exactly one SessionEvent.
func (p *GoTrueProvider) Events(ctx context.Context) (<-chan SessionEvent, error) {
	if p.eventsURL == "" {
		return nil, nil
	}

	header := http.Header{}
	header.Set("apikey", p.anonKey)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, p.eventsURL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	events := make(chan SessionEvent)
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	go func() {
		defer close(events)
		defer func() { _ = conn.Close() }()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				p.logger.Debug("session event stream closed", "error", err)
				return
			}
			var msg eventMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				p.logger.Warn("dropping malformed session event", "error", err)
				continue
			}
			event := SessionEvent{Type: msg.Event}
			if msg.Session != nil {
				event.Session = &ProviderSession{
					Token: oauth2.Token{
						AccessToken:  msg.Session.AccessToken,
						RefreshToken: msg.Session.RefreshToken,
					},
					User: msg.Session.User,
				}
				if event.Session.User == nil {
					event.Session.User = userFromToken(msg.Session.AccessToken)
				}
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}
