package web

import (
	"encoding/binary"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/display"
	"github.com/thelolagemann/gomeboy-core/pkg/display/event"
	"github.com/thelolagemann/gomeboy-core/pkg/emulator"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

type hub struct {
	clients map[*Client]bool
	emu     display.Emulator
	log     log.Logger

	// last is the most recent frame, sent to clients as they join.
	last []byte

	frames, broadcast    chan []byte
	register, unregister chan *Client
	done                 chan struct{}
	closeOnce            sync.Once

	currentID   uint8
	compression bool
	quality     int
	mu          sync.Mutex
}

func newHub(emu display.Emulator, compression bool, quality int, l log.Logger) *hub {
	return &hub{
		clients:     make(map[*Client]bool),
		emu:         emu,
		log:         l,
		compression: compression,
		quality:     quality,
		frames:      make(chan []byte, 16),
		broadcast:   make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// ServeHTTP upgrades the request to a websocket connection, and
// registers the client with the hub.
func (h *hub) ServeHTTP(wr http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(wr, r, nil)
	if err != nil {
		h.log.Errorf("web: upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	c := h.newClient(conn)
	if c == nil {
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.ReadPump()
	go c.WritePump()
}

// run handles client registration and broadcasting until the hub
// is closed.
func (h *hub) run() {
	t := time.NewTicker(time.Second)
	defer t.Stop()

	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.log.Infof("web: client %d connected", c.ID)
			if h.last != nil {
				h.sendFrame(c, h.last)
			}
		case fb := <-h.frames:
			h.last = fb
			for c := range h.clients {
				h.sendFrame(c, fb)
			}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
				h.log.Infof("web: client %d disconnected after %s", c.ID, time.Since(c.connectedAt).Round(time.Second))
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					h.drop(c)
				}
			}
		case <-t.C:
			// periodic latency updates
			data := []byte{ServerInfo}
			h.mu.Lock()
			for c := range h.clients {
				data = append(data, c.ID, 0, 0)
				binary.LittleEndian.PutUint16(data[len(data)-2:], c.avgLatency)
			}
			h.mu.Unlock()
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
				}
			}
		case <-h.done:
			for c := range h.clients {
				select {
				case c.Send <- []byte{Closing}:
				default:
				}
				close(c.Send)
				delete(h.clients, c)
			}
			return
		}
	}
}

// sendFrame encodes fb with the client's own encoder and queues the
// result, dropping the client if it can't keep up.
func (h *hub) sendFrame(c *Client, fb []byte) {
	h.mu.Lock()
	compress := h.compression
	h.mu.Unlock()

	msgs, err := c.enc.encode(fb, compress)
	if err != nil {
		h.log.Errorf("web: encoding frame for client %d: %v", c.ID, err)
		return
	}
	for _, msg := range msgs {
		select {
		case c.Send <- msg:
		default:
			h.drop(c)
			return
		}
	}
}

// drop disconnects a client whose send queue is full.
func (h *hub) drop(c *Client) {
	h.log.Infof("web: dropping slow client %d", c.ID)
	close(c.Send)
	delete(h.clients, c)
}

// stream hands frames and titles to the hub until frames is closed,
// a Quit event arrives or errs yields an error.
func (h *hub) stream(frames <-chan []byte, events <-chan event.Event, errs <-chan error) error {
	for {
		select {
		case fb, ok := <-frames:
			if !ok {
				return nil
			}
			h.send(h.frames, fb)
		case e := <-events:
			switch e.Type {
			case event.Title:
				if title, ok := e.Data.(string); ok {
					h.send(h.broadcast, append([]byte{Title}, title...))
				}
			case event.Quit:
				return nil
			}
		case err := <-errs:
			return err
		}
	}
}

// send queues msg on ch unless the hub has been closed.
func (h *hub) send(ch chan<- []byte, msg []byte) {
	select {
	case ch <- msg:
	case <-h.done:
	}
}

// control applies a control message sent by a client.
func (h *hub) control(message []byte) {
	switch message[0] {
	case ControlPause:
		h.emu.SendCommand(display.Pause)
	case ControlResume:
		h.emu.SendCommand(display.Resume)
	case ControlReset:
		h.emu.SendCommand(display.Reset)
	case ControlCompression:
		if len(message) < 2 {
			return
		}
		h.mu.Lock()
		h.compression = message[1] == 1
		h.mu.Unlock()
	default:
		h.log.Debugf("web: unknown control message 0x%02X", message[0])
	}
}

func (h *hub) close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// info returns a byte of information containing the various
// hub settings. The byte is constructed as follows:
//
//	Bit 0: Emulator running
//	Bit 1: Emulator paused
//	Bit 2: Compression enabled
func (h *hub) info() byte {
	info := uint8(0)
	switch h.emu.Status() {
	case emulator.Running, emulator.Halted:
		info |= types.Bit0
	case emulator.Paused:
		info |= types.Bit1
	}

	h.mu.Lock()
	if h.compression {
		info |= types.Bit2
	}
	h.mu.Unlock()

	return info
}

// newClient creates a new client, queues the initial information
// for it and registers it to the hub. It returns nil if the hub
// has been closed.
func (h *hub) newClient(conn *websocket.Conn) *Client {
	h.mu.Lock()
	h.currentID++
	c := &Client{
		hub:         h,
		conn:        conn,
		Send:        make(chan []byte, 256),
		ID:          h.currentID,
		enc:         newEncoder(h.quality),
		connectedAt: time.Now(),
	}
	h.mu.Unlock()

	c.Send <- []byte{ClientInfo, c.ID, h.info()}

	select {
	case h.register <- c:
		return c
	case <-h.done:
		return nil
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
