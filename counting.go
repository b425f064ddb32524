package csrand

import (
	"crypto/rand"
	"io"
	"sync/atomic"
)

// CountingSource is an io.Reader implementation that reads from an
// underlying entropy source and tracks how many bytes were drawn.
//
// Plug it into New to measure the entropy cost of a workload without
// buffering any of the data:
//
//	src := csrand.NewCountingSource(nil)
//	sampler := csrand.New(src)
//	// ... use sampler ...
//	fmt.Println(src.Size())
//
// A CountingSource is safe for concurrent use as long as the reader it
// wraps is.
type CountingSource struct {
	src io.Reader

	read int64
}

var _ io.Reader = (*CountingSource)(nil)

// NewCountingSource wraps src into a CountingSource.
//
// A nil src means crypto/rand.Reader.
func NewCountingSource(src io.Reader) *CountingSource {
	if src == nil {
		src = rand.Reader
	}
	return &CountingSource{src: src}
}

func (cs *CountingSource) Read(buf []byte) (int, error) {
	n, err := cs.src.Read(buf)
	atomic.AddInt64(&cs.read, int64(n))
	return n, err
}

// Size returns the total number of bytes read from the underlying source.
func (cs *CountingSource) Size() int64 {
	return atomic.LoadInt64(&cs.read)
}
