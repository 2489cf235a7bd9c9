package terminal

import (
	"io"
	"math"
	"unicode/utf8"
)

const (
	esc = 0x1b

	// decoderBufSize bounds the persistent input buffer
	decoderBufSize = 256

	// maxCSIParams is the number of CSI parameters retained, extra ones are ignored
	maxCSIParams = 4

	// paramMax is the saturation ceiling for numeric escape parameters
	paramMax = math.MaxInt32
)

// Decoder incrementally turns raw terminal bytes into events.
// Bytes of an incomplete sequence stay buffered across polls until the rest arrives.
// A Decoder is owned by a single goroutine.
type Decoder struct {
	r   io.Reader
	buf [decoderBufSize]byte
	n   int // filled length
	pos int // read position
}

// NewDecoder creates a decoder reading from r.
// r must not block: a read with nothing available returns 0 bytes (any error is ignored).
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Reset discards all buffered bytes
func (d *Decoder) Reset() {
	d.n = 0
	d.pos = 0
}

// Buffered returns the number of unread bytes held by the decoder
func (d *Decoder) Buffered() int {
	return d.n - d.pos
}

// Poll performs at most one read and returns at most one event.
// ok is false when no complete event is available; the call never blocks
// beyond the underlying non-blocking read.
func (d *Decoder) Poll() (ev Event, ok bool) {
	d.fill()
	if d.pos >= d.n {
		return Event{}, false
	}

	data := d.buf[d.pos:d.n]
	// A full buffer that still holds an incomplete sequence can never complete it
	full := d.n == len(d.buf)

	for _, parse := range parsers {
		m := parse(data)
		switch m.state {
		case matched:
			d.pos += m.n
			return m.ev, m.emit
		case incomplete:
			if !full {
				return Event{}, false
			}
		}
	}

	// Nothing recognized: skip one byte to guarantee forward progress
	d.pos++
	return Event{}, false
}

// fill compacts unread bytes to offset zero and appends one read's worth of input
func (d *Decoder) fill() {
	if d.pos > 0 {
		copy(d.buf[:], d.buf[d.pos:d.n])
		d.n -= d.pos
		d.pos = 0
	}
	if d.r == nil || d.n == len(d.buf) {
		return
	}
	// Read errors are indistinguishable from "no data" for polling purposes
	k, _ := d.r.Read(d.buf[d.n:])
	if k > 0 {
		d.n += min(k, len(d.buf)-d.n)
	}
}

// matchState is the outcome of one parse rule
type matchState uint8

const (
	noMatch    matchState = iota // rule does not apply, try the next one
	incomplete                   // rule applies but needs more bytes
	matched                      // rule consumed n bytes
)

type match struct {
	state matchState
	n     int
	ev    Event
	emit  bool
}

var (
	matchNone = match{state: noMatch}
	matchWait = match{state: incomplete}
)

// consumed reports n bytes consumed yielding ev
func consumed(n int, ev Event) match {
	return match{state: matched, n: n, ev: ev, emit: true}
}

// swallowed reports n bytes consumed without an event
func swallowed(n int) match {
	return match{state: matched, n: n}
}

// parsers in priority order, first match wins
var parsers = [...]func([]byte) match{
	parseSGRMouse,
	parseCSI,
	parseSS3,
	parseAlt,
	parseBareEscape,
	parsePlain,
}

// accumulate appends a decimal digit, saturating at paramMax
func accumulate(v int, digit byte) int {
	d := int(digit - '0')
	if v > (paramMax-d)/10 {
		return paramMax
	}
	return v*10 + d
}

// parseSGRMouse parses ESC [ < Btn ; X ; Y (M|m)
func parseSGRMouse(data []byte) match {
	if len(data) < 3 || data[0] != esc || data[1] != '[' || data[2] != '<' {
		return matchNone
	}

	var params [3]int
	idx := 0
	for i := 3; i < len(data); i++ {
		c := data[i]
		switch {
		case c >= '0' && c <= '9':
			if idx < len(params) {
				params[idx] = accumulate(params[idx], c)
			}
		case c == ';':
			idx++
		case c == 'M' || c == 'm':
			btn, action, mod := decodeSGRButton(params[0], c == 'm')
			// Wire coordinates are 1-based
			return consumed(i+1, Event{
				Type:        EventMouse,
				Modifiers:   mod,
				MouseX:      max(params[1]-1, 0),
				MouseY:      max(params[2]-1, 0),
				MouseBtn:    btn,
				MouseAction: action,
			})
		default:
			return matchNone
		}
	}
	return matchWait
}

// parseCSI parses ESC [ params final for key sequences
func parseCSI(data []byte) match {
	if len(data) < 2 || data[0] != esc || data[1] != '[' {
		return matchNone
	}

	var params [maxCSIParams]int
	count := 0
	cur := 0

	for i := 2; i < len(data); i++ {
		c := data[i]
		switch {
		case c >= '0' && c <= '9':
			cur = accumulate(cur, c)
		case c == ';':
			if count < maxCSIParams {
				params[count] = cur
				count++
			}
			cur = 0
		case c >= 0x20 && c <= 0x3f:
			// Private markers and intermediates carry no key information
		case c >= 0x40 && c <= 0x7e:
			if count < maxCSIParams {
				params[count] = cur
				count++
			}
			k, mod, ok := lookupCSI(c, params[:count])
			if !ok {
				return swallowed(i + 1)
			}
			return consumed(i+1, keyEvent(k, mod))
		default:
			return matchNone
		}
	}
	return matchWait
}

// parseSS3 parses ESC O X
func parseSS3(data []byte) match {
	if len(data) < 2 || data[0] != esc || data[1] != 'O' {
		return matchNone
	}
	if len(data) < 3 {
		return matchWait
	}
	c := data[2]
	if c < 0x20 || c > 0x7e {
		return matchNone
	}
	if k, ok := lookupSS3(c); ok {
		return consumed(3, keyEvent(k, ModNone))
	}
	return swallowed(3)
}

// parseAlt parses ESC followed by a single printable or control byte
func parseAlt(data []byte) match {
	if len(data) < 2 || data[0] != esc {
		return matchNone
	}
	c := data[1]
	switch {
	case c == '[' || c == 'O':
		return matchNone
	case c == esc:
		return consumed(2, keyEvent(KeyEscape, ModAlt))
	case c == 0x7f:
		return consumed(2, keyEvent(KeyBackspace, ModAlt))
	case c >= 1 && c <= 26:
		return consumed(2, runeEvent(rune('a'+c-1), ModAlt|ModCtrl))
	case c >= 0x20 && c < 0x7f:
		return consumed(2, runeEvent(rune(c), ModAlt))
	}
	return matchNone
}

// parseBareEscape reports a lone ESC as the Escape key.
// If it was the start of a sequence split across reads, the remainder decodes on its own.
func parseBareEscape(data []byte) match {
	if len(data) == 1 && data[0] == esc {
		return consumed(1, keyEvent(KeyEscape, ModNone))
	}
	return matchNone
}

// parsePlain handles single-byte controls, printable ASCII and UTF-8
func parsePlain(data []byte) match {
	c := data[0]
	switch {
	case c == '\t':
		return consumed(1, keyEvent(KeyTab, ModNone))
	case c == '\r' || c == '\n':
		return consumed(1, keyEvent(KeyEnter, ModNone))
	case c == 0x7f:
		return consumed(1, keyEvent(KeyBackspace, ModNone))
	case c == 0:
		// Ctrl+Space / Ctrl+@
		return consumed(1, runeEvent(' ', ModCtrl))
	case c >= 1 && c <= 26:
		return consumed(1, runeEvent(rune('a'+c-1), ModCtrl))
	case c >= 0x20 && c < 0x7f:
		return consumed(1, runeEvent(rune(c), ModNone))
	case c >= 0x80:
		size := utf8SeqLen(c)
		if size == 0 {
			return swallowed(1)
		}
		if len(data) < size {
			return matchWait
		}
		r, n := utf8.DecodeRune(data[:size])
		if r == utf8.RuneError && n <= 1 {
			return swallowed(1)
		}
		return consumed(n, runeEvent(r, ModNone))
	}
	return matchNone
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0 // Invalid
}
