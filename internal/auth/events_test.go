package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsStream(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer func() { _ = conn.Close() }()

		messages := []string{
			`{"event": "SIGNED_IN", "session": {"access_token": "access-1", "user": {"id": "user-1", "email": "a@example.com"}}}`,
			`not json`,
			`{"event": "SIGNED_OUT"}`,
		}
		for _, msg := range messages {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	p := NewGoTrueProvider(server.URL, "anon-key", wsURL, nil, nil)

	events, err := p.Events(ctx)
	require.NoError(t, err)
	require.NotNil(t, events)

	first := <-events
	assert.Equal(t, EventSignedIn, first.Type)
	require.NotNil(t, first.Session)
	assert.Equal(t, "user-1", first.Session.User.ID)

	// The malformed message is dropped, not surfaced.
	second := <-events
	assert.Equal(t, EventSignedOut, second.Type)
	assert.Nil(t, second.Session)
}
