// Package server exposes sessions to external renderers over websockets.
// Each connection owns exactly one session, resolved synchronously by
// the connection's read loop.
package server

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// Connection wraps the websocket connection with a buffered outgoing
// channel so the game loop never blocks on a slow client.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// NewConnection creates a new connection wrapper.
func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, 64),
	}
}

// ReadPump reads intent messages from the connection and hands them to
// the handler until the client disconnects.
func (c *Connection) ReadPump(h MessageHandler) {
	defer c.ws.Close()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}
		h.HandleMessage(c, message)
	}
}

// WritePump writes queued messages to the connection.
func (c *Connection) WritePump() {
	defer c.ws.Close()

	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// Send marshals and queues a message for the client. A full send queue
// drops the connection rather than stalling the game loop.
func (c *Connection) Send(msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- payload:
	default:
		c.ws.Close()
	}
	return nil
}

// Close shuts down the outgoing queue, ending the write pump.
func (c *Connection) Close() {
	close(c.send)
}

// MessageHandler resolves a single incoming message.
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}
