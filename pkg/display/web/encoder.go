package web

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
)

const cacheSize = 64

// encoder turns frames into messages for a single client. Consecutive
// identical frames are counted rather than sent, and frames the client
// has been sent recently are sent as an index into its cache.
type encoder struct {
	frames  *cache
	quality int

	last    uint64
	hasLast bool
	skipped uint32
}

func newEncoder(quality int) *encoder {
	return &encoder{
		frames:  newCache(cacheSize),
		quality: quality,
	}
}

// encode returns the messages to send for fb, if any, brotli
// encoding new frames when compress is set.
func (e *encoder) encode(fb []byte, compress bool) ([][]byte, error) {
	hash := xxhash.Sum64(fb)
	if e.hasLast && hash == e.last {
		e.skipped++
		return nil, nil
	}
	e.last, e.hasLast = hash, true

	var msgs [][]byte
	if e.skipped > 0 {
		msg := make([]byte, 5)
		msg[0] = FrameSkip
		binary.LittleEndian.PutUint32(msg[1:], e.skipped)
		msgs = append(msgs, msg)
		e.skipped = 0
	}

	if idx := e.frames.index(hash); idx != -1 {
		msg := []byte{FrameCache, 0, 0}
		binary.LittleEndian.PutUint16(msg[1:], uint16(idx))
		return append(msgs, msg), nil
	}

	output, compressed := fb, uint8(0)
	if compress {
		var err error
		output, err = cbrotli.Encode(fb, cbrotli.WriterOptions{Quality: e.quality})
		if err != nil {
			return msgs, err
		}
		compressed = 1
	}

	idx := e.frames.add(hash, output)
	msg := make([]byte, 4, 4+len(output))
	msg[0] = Frame
	binary.LittleEndian.PutUint16(msg[1:], uint16(idx))
	msg[3] = compressed
	return append(msgs, append(msg, output...)), nil
}
