// Package promsource provides a Prometheus-instrumented wrapper around an
// entropy source.
//
// Wrap the reader passed to csrand.New to get visibility into how much
// entropy a process draws and whether the source ever fails:
//
//	sampler := csrand.New(promsource.Wrap("hsm", hsmReader))
package promsource

import (
	"crypto/rand"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sourceLabel  = "source"
	successLabel = "success"
)

var (
	readsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(prometheus.CounterOpts{
		Name: "csrand_entropy_reads_total",
		Help: "Total number of reads from the wrapped entropy source",
	}, []string{
		sourceLabel,
		successLabel,
	})

	bytesTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(prometheus.CounterOpts{
		Name: "csrand_entropy_bytes_total",
		Help: "Total number of bytes drawn from the wrapped entropy source",
	}, []string{
		sourceLabel,
	})

	readSize = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "csrand_entropy_read_size_bytes",
		Help:    "Size (in bytes) of individual reads from the wrapped entropy source",
		Buckets: []float64{4, 8, 12, 16, 32, 64, 256, 1024},
	}, []string{
		sourceLabel,
	})
)

type source struct {
	name string
	src  io.Reader
}

var _ io.Reader = source{}

// Wrap wraps src so that every read is reported to Prometheus under the
// given source name.
//
// A nil src means crypto/rand.Reader.
// The returned reader is safe for concurrent use as long as src is.
func Wrap(name string, src io.Reader) io.Reader {
	if src == nil {
		src = rand.Reader
	}
	return source{name: name, src: src}
}

func (s source) Read(buf []byte) (n int, err error) {
	n, err = s.src.Read(buf)
	readsTotal.With(prometheus.Labels{
		sourceLabel:  s.name,
		successLabel: strconv.FormatBool(err == nil),
	}).Inc()
	bytesTotal.With(prometheus.Labels{
		sourceLabel: s.name,
	}).Add(float64(n))
	readSize.With(prometheus.Labels{
		sourceLabel: s.name,
	}).Observe(float64(n))
	return n, err
}
