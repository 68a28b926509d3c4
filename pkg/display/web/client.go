package web

import (
	"time"

	"github.com/gorilla/websocket"
)

// Client is a websocket connection watching the emulator.
type Client struct {
	hub  *hub
	conn *websocket.Conn
	Send chan []byte
	ID   uint8

	// enc is only used by the hub's run loop.
	enc *encoder

	// avgLatency is the average round trip time in milliseconds.
	avgLatency  uint16
	connectedAt time.Time
}

// ReadPump reads control messages from the client until the
// connection is closed.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}
		if message[0] == ControlClose {
			return
		}

		c.hub.control(message)
	}
}

// WritePump writes queued messages to the client.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.Send {
		// try to write message to client
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}

		// update average latency
		if d, ok := rtt(c.conn.UnderlyingConn()); ok {
			c.hub.mu.Lock()
			c.avgLatency = ((c.avgLatency * 9) + uint16(d.Milliseconds())) / 10
			c.hub.mu.Unlock()
		}
	}

	// hub closed the connection
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
