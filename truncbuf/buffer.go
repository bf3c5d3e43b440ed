// Package truncbuf provides fixed-capacity text buffers that truncate on
// overflow instead of growing.
package truncbuf

import (
	"fmt"
	"unicode/utf8"
	"unsafe"
)

// Buffer stores formatted text in at most Cap() bytes.
//
// Storage is allocated once by New and never grows. A write that does not fit
// is cut at the last rune start that still fits, so the stored bytes never end
// in a partial UTF-8 sequence. Once a write is cut the buffer stays truncated.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	buf       []byte
	used      int
	truncated bool
}

func New(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	return &Buffer{
		buf: make([]byte, n),
	}
}

// Write implements io.Writer. It always reports len(p) bytes written so that
// fmt does not abort a format on overflow; use Truncated to detect loss.
func (b *Buffer) Write(p []byte) (n int, err error) {
	b.used += copyPrefix(b.buf[b.used:], p, &b.truncated)
	return len(p), nil
}

// WriteString implements io.StringWriter with the same semantics as Write.
func (b *Buffer) WriteString(s string) (n int, err error) {
	b.used += copyPrefix(b.buf[b.used:], s, &b.truncated)
	return len(s), nil
}

// Printf formats into the buffer.
func (b *Buffer) Printf(format string, args ...any) {
	fmt.Fprintf(b, format, args...)
}

// Text returns the stored text and whether any write was cut.
//
// The string shares memory with the buffer. Bytes below Len are never
// rewritten, so the string stays valid across later writes.
func (b *Buffer) Text() (string, bool) {
	if b.used == 0 {
		return "", b.truncated
	}
	return unsafe.String(unsafe.SliceData(b.buf), b.used), b.truncated
}

func (b *Buffer) String() string {
	s, _ := b.Text()
	return s
}

// Bytes returns the stored bytes. The slice must not be modified.
func (b *Buffer) Bytes() []byte { return b.buf[:b.used:b.used] }

func (b *Buffer) Len() int        { return b.used }
func (b *Buffer) Cap() int        { return len(b.buf) }
func (b *Buffer) Available() int  { return len(b.buf) - b.used }
func (b *Buffer) Truncated() bool { return b.truncated }

// Sprintf formats into a new buffer of capacity n.
func Sprintf(n int, format string, args ...any) (string, bool) {
	b := New(n)
	b.Printf(format, args...)
	return b.Text()
}

// copyPrefix copies as much of src into dst as fits without splitting a rune
// and returns the number of bytes copied. truncated is set if src was cut.
func copyPrefix[T string | []byte](dst []byte, src T, truncated *bool) int {
	n := len(src)
	if len(dst) < n {
		*truncated = true
		n = runeBoundary(src, len(dst))
	}
	return copy(dst, src[:n])
}

// runeBoundary returns the largest offset <= limit at which a rune of s
// starts. limit must be less than len(s).
func runeBoundary[T string | []byte](s T, limit int) int {
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return limit
}
