package ws

import (
	"net/http"
	"sync"

	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/mylogger"

	"github.com/gorilla/websocket"
)

var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ClientList is a map used to help manage the set of connected dashboards
type ClientList map[*Client]bool

// Dispatcher fans mutation events out to every connected dashboard.
type Dispatcher struct {
	clients ClientList
	sync.RWMutex
	log mylogger.Logger
}

func NewDispatcher(log mylogger.Logger) *Dispatcher {
	return &Dispatcher{
		clients: make(ClientList),
		log:     log,
	}
}

// WsHandler upgrades the request into a persistent websocket connection and
// registers it for the event feed. Authentication happened in the middleware
// wrapping this route.
func (d *Dispatcher) WsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("ws_connect")

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade connection", err)
			return
		}

		client := NewClient(conn, d)
		d.AddClient(client)
		log.Info("dashboard connected", "clients", d.Count())

		go client.ReadMessages()
		go client.WriteMessages()
	}
}

// Broadcast queues the event on every connected client, dropping clients
// whose buffers are stuck.
func (d *Dispatcher) Broadcast(event models.MutationEvent) {
	d.RLock()
	clients := make([]*Client, 0, len(d.clients))
	for c := range d.clients {
		clients = append(clients, c)
	}
	d.RUnlock()

	for _, c := range clients {
		select {
		case c.egress <- event:
		default:
			d.log.Warn("dropping slow websocket client")
			d.RemoveClient(c)
		}
	}
}

func (d *Dispatcher) AddClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	d.clients[client] = true
}

func (d *Dispatcher) RemoveClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.clients[client]; ok {
		close(client.done)
		client.conn.Close()
		delete(d.clients, client)
	}
}

func (d *Dispatcher) Count() int {
	d.RLock()
	defer d.RUnlock()

	return len(d.clients)
}
