// Package web provides a display driver that streams frames to
// browsers over a websocket. Frames are deduplicated by hash, and
// optionally brotli compressed.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/thelolagemann/gomeboy-core/pkg/display"
	"github.com/thelolagemann/gomeboy-core/pkg/display/event"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

func init() {
	driver := &webDriver{log: log.New()}
	display.Install("web", driver, []display.DriverOption{
		{
			Name:        "addr",
			Default:     ":8090",
			Value:       &driver.addr,
			Type:        "string",
			Description: "Address to serve the websocket on",
		},
		{
			Name:        "compression",
			Default:     true,
			Value:       &driver.compression,
			Type:        "bool",
			Description: "Compress frames with brotli",
		},
		{
			Name:        "quality",
			Default:     7,
			Value:       &driver.quality,
			Type:        "int",
			Description: "Brotli compression quality (0-11)",
		},
	})
}

type webDriver struct {
	addr        string
	compression bool
	quality     int

	emu    display.Emulator
	log    log.Logger
	server *http.Server
}

func (d *webDriver) Initialize(emu display.Emulator) {
	d.emu = emu
}

// Start serves the websocket and streams frames until the frame
// channel is closed or a Quit event arrives.
func (d *webDriver) Start(frames <-chan []byte, events <-chan event.Event) error {
	listener, err := net.Listen("tcp", d.addr)
	if err != nil {
		return err
	}

	h := newHub(d.emu, d.compression, d.quality, d.log)
	defer h.close()

	mux := http.NewServeMux()
	mux.Handle("/", h)
	d.server = &http.Server{Handler: mux}

	errs := make(chan error, 1)
	go func() {
		if err := d.server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	go h.run()

	d.log.Infof("web: serving on %s", listener.Addr())
	return h.stream(frames, events, errs)
}

// Stop shuts the server down.
func (d *webDriver) Stop() error {
	if d.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.server.Shutdown(ctx)
}
