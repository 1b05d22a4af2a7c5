package ws

import (
	"loadgo/internal/admin-service/core/domain/models"

	"github.com/gorilla/websocket"
)

const egressBuffer = 16

type Client struct {
	conn   *websocket.Conn
	dis    *Dispatcher
	egress chan models.MutationEvent
	done   chan struct{}
}

func NewClient(conn *websocket.Conn, dis *Dispatcher) *Client {
	return &Client{
		conn:   conn,
		dis:    dis,
		egress: make(chan models.MutationEvent, egressBuffer),
		done:   make(chan struct{}),
	}
}

// ReadMessages drains the connection so close frames are processed. The feed
// is one-way; inbound payloads are discarded.
func (c *Client) ReadMessages() {
	defer c.dis.RemoveClient(c)

	c.conn.SetReadLimit(1024)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.dis.log.Warn("unexpected websocket close")
			}
			return
		}
	}
}

func (c *Client) WriteMessages() {
	defer c.dis.RemoveClient(c)

	for {
		select {
		case <-c.done:
			return
		case event := <-c.egress:
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}
