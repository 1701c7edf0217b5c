package realtime

import (
	"time"

	"marketplace/internal/errors"

	"golang.org/x/net/websocket"
)

// WebsocketConn adapts an x/net websocket to Conn. Snapshots go out as text frames.
type WebsocketConn struct {
	ws           *websocket.Conn
	writeTimeout time.Duration
}

func NewWebsocketConn(ws *websocket.Conn, writeTimeout time.Duration) *WebsocketConn {
	return &WebsocketConn{ws: ws, writeTimeout: writeTimeout}
}

func (c *WebsocketConn) Write(data []byte) error {
	if c.writeTimeout > 0 {
		if err := c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(websocket.Message.Send(c.ws, string(data)))
}

func (c *WebsocketConn) Close() error {
	return errors.WithStack(c.ws.Close())
}

// Drain reads and discards client frames until the peer goes away.
func (c *WebsocketConn) Drain() error {
	for {
		var msg string
		if err := websocket.Message.Receive(c.ws, &msg); err != nil {
			return errors.WithStack(err)
		}
	}
}
