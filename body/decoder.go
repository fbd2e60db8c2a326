package body

import (
	"bytes"

	"github.com/evermet/wshttp/internal/hexconv"
	"github.com/evermet/wshttp/status"
)

// maxChunkLengthDigits sets the implicit limit of a single chunk length to
// 16 hex digits, the widest value a uint64 can hold.
const maxChunkLengthDigits = 16

// Tracker is the byte budget of a single message body. Both framings grow
// it through Grow only, so the ceiling check lives in exactly one place.
type Tracker struct {
	// Needed is how many bytes remain in the current framing unit: the
	// whole body for plain framing, the current chunk for chunked framing.
	Needed uint64
	// Total accumulates the declared size of the whole body.
	Total uint64
	// Max is the hard ceiling for Total. Zero means unlimited.
	Max uint64
}

// Grow raises Total by n, failing without mutation if that would cross Max.
func (t *Tracker) Grow(n uint64) error {
	total := t.Total + n
	if total < t.Total {
		return status.ErrBodyTooLarge
	}

	if t.Max != 0 && total > t.Max {
		return status.ErrBodyTooLarge
	}

	t.Total = total
	return nil
}

// Decoder incrementally consumes raw body bytes under a framing fixed via
// Init and accumulates the decoded payload. A single instance serves one
// message at a time and must not be shared between goroutines.
type Decoder struct {
	tracker   *Tracker
	buff      []byte
	chunked   bool
	afterData bool
	done      bool
}

func NewDecoder(tracker *Tracker) *Decoder {
	return &Decoder{tracker: tracker}
}

// Init selects the framing for the upcoming body. The accumulated payload
// is kept, framing state is reset.
func (d *Decoder) Init(chunked bool) {
	d.chunked = chunked
	d.afterData = false
	d.done = false
}

// Process consumes body bytes from data, appending the decoded payload to
// the internal buffer. Returned is the number of input bytes consumed,
// which exceeds the decoded count only at chunk boundaries, where the size
// lines and terminators are swallowed as well.
func (d *Decoder) Process(data []byte) (consumed int, err error) {
	if len(data) == 0 {
		return 0, nil
	}

	if d.chunked {
		return d.processChunked(data)
	}

	return d.consume(data), nil
}

// Body exposes the decoded payload accumulated so far.
func (d *Decoder) Body() []byte {
	return d.buff
}

// Set replaces the accumulated payload with a copy of value.
func (d *Decoder) Set(value []byte) {
	d.buff = append(d.buff[:0], value...)
}

// Discard drops the accumulated payload, leaving framing state intact.
func (d *Decoder) Discard() {
	d.buff = d.buff[:0]
}

// Done reports whether the body is complete: the terminal chunk was seen,
// or a plain body has no bytes left to expect.
func (d *Decoder) Done() bool {
	if d.chunked {
		return d.done
	}

	return d.tracker.Needed == 0
}

// consume takes up to tracker.Needed bytes of data into the payload and
// returns how many were taken.
func (d *Decoder) consume(data []byte) int {
	n := min(d.tracker.Needed, uint64(len(data)))
	d.buff = append(d.buff, data[:n]...)
	d.tracker.Needed -= n

	return int(n)
}

var crlf = []byte("\r\n")

// processChunked walks data with an explicit cursor, so one call decodes
// any number of complete chunks plus a partial one at constant stack depth.
// The chunk-size line must arrive within a single call's buffer: crossing
// calls mid-line is reported as malformed, buffering enough is on the
// upstream reader.
func (d *Decoder) processChunked(data []byte) (consumed int, err error) {
	if d.done {
		// the terminal chunk was already seen, everything past it is
		// swallowed as trailer material
		return len(data), nil
	}

	cursor := 0

	for cursor < len(data) {
		if d.tracker.Needed > 0 {
			cursor += d.consume(data[cursor:])
			if d.tracker.Needed == 0 {
				d.afterData = true
			}

			continue
		}

		rest := data[cursor:]

		if d.afterData {
			// chunk payload is terminated by its own CRLF
			if len(rest) < 2 || rest[0] != '\r' || rest[1] != '\n' {
				return cursor, status.ErrInvalidFormat
			}

			d.afterData = false
			cursor += 2
			continue
		}

		boundary := bytes.Index(rest, crlf)
		if boundary == -1 {
			return cursor, status.ErrInvalidFormat
		}

		size, ok := parseHex(rest[:boundary])
		if !ok {
			return cursor, status.ErrInvalidFormat
		}

		if err = d.tracker.Grow(size); err != nil {
			return cursor, err
		}

		if size == 0 {
			// the terminal chunk: report the whole remainder as handled
			d.done = true
			return len(data), nil
		}

		d.tracker.Needed = size
		cursor += boundary + len(crlf)
	}

	return cursor, nil
}

func parseHex(line []byte) (num uint64, ok bool) {
	if len(line) == 0 || len(line) > maxChunkLengthDigits {
		return 0, false
	}

	for _, char := range line {
		val := hexconv.Halfbyte[char]
		if val == 0xFF {
			return 0, false
		}

		num = num<<4 | uint64(val)
	}

	return num, true
}
