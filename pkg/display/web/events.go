package web

// Type is the first byte of every message sent to a client.
type Type = uint8

const (
	_ Type = iota
	// Frame carries a frame: a little endian cache index, a
	// compression flag and the (possibly brotli encoded) RGB data.
	Frame
	// FrameCache repeats the frame stored at a cache index.
	FrameCache
	// FrameSkip reports the number of identical frames that were
	// not sent, as a little endian uint32.
	FrameSkip
	// Title carries the window title.
	Title
	// ServerInfo carries each client's ID and average latency.
	ServerInfo
	// ClientInfo carries the hub settings, sent on connection.
	ClientInfo
	// Closing is sent when the server shuts down.
	Closing = 255
)

// Control is the first byte of every message sent by a client.
type Control = uint8

const (
	ControlPause Control = iota
	ControlResume
	ControlReset
	ControlCompression
	// ControlClose is sent by a client that is disconnecting.
	ControlClose = 255
)
