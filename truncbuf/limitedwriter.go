package truncbuf

// Writer that stores string at most N bytes and marks the end when stripped
type LimitedWriter struct {
	N      int
	Marker string
	buf    *Buffer
}

const (
	STRIPPED_MESSAGE = " ... stripped"
)

func NewLimitedWriter(n int) *LimitedWriter {
	return NewLimitedWriterWithMarker(n, STRIPPED_MESSAGE)
}

func NewLimitedWriterWithMarker(n int, marker string) *LimitedWriter {
	buf := New(n)
	return &LimitedWriter{
		N:      buf.Cap(),
		Marker: marker,
		buf:    buf,
	}
}

func (w *LimitedWriter) Write(b []byte) (n int, err error) {
	return w.buf.Write(b)
}

func (w *LimitedWriter) WriteString(s string) (n int, err error) {
	return w.buf.WriteString(s)
}

func (w *LimitedWriter) Truncated() bool {
	return w.buf.Truncated()
}

// Bytes returns the captured output. If the output was stripped, the tail is
// replaced by Marker and the result still fits in N bytes.
func (w *LimitedWriter) Bytes() []byte {
	d := w.buf.Bytes()
	if !w.buf.Truncated() {
		return d
	}

	m := w.Marker
	if len(m) > w.N {
		return []byte(m[:runeBoundary(m, w.N)])
	}
	keep := w.N - len(m)
	if keep < len(d) {
		keep = runeBoundary(d, keep)
	} else {
		keep = len(d)
	}
	res := make([]byte, 0, keep+len(m))
	res = append(res, d[:keep]...)
	return append(res, m...)
}
