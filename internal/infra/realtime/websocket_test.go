package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func TestWebsocketConn_DeliversBroadcasts(t *testing.T) {
	hub := newTestHub(t, 4)
	store := uuid.New()
	subscribed := make(chan struct{})

	srv := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		conn := NewWebsocketConn(ws, time.Second)
		assert.NoError(t, hub.Subscribe(conn, store))
		close(subscribed)
		defer hub.Unsubscribe(conn, store)

		_ = conn.Drain()
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)

	<-subscribed
	hub.Broadcast(t.Context(), store, map[string]string{"status": "CONFIRMED"})

	var msg string
	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, websocket.Message.Receive(client, &msg))
	assert.JSONEq(t, `{"status":"CONFIRMED"}`, msg)

	require.NoError(t, client.Close())
	require.Eventually(t, func() bool { return hub.SubscriberCount(store) == 0 }, time.Second, 5*time.Millisecond)
}
