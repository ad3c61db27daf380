// Package stream resolves textual endpoint specs (stdio, serial device,
// or file path) into live streams and owns the handles it opens.
package stream

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Flusher is implemented by pooled handles with buffered writes that must
// reach the device before close.
type Flusher interface {
	Flush() error
}

// Pool owns every non-stdio handle opened by a Resolver, keyed by the
// complete spec string that opened it. At most one live handle exists per
// distinct spec; each is flushed and closed exactly once, at Release.
type Pool struct {
	log     *logrus.Logger
	handles map[string]io.Closer
	order   []string
}

// NewPool returns an empty pool.
func NewPool(log *logrus.Logger) *Pool {
	return &Pool{
		log:     log,
		handles: make(map[string]io.Closer),
	}
}

// Lookup returns the handle previously stored under spec, if any.
func (p *Pool) Lookup(spec string) (io.Closer, bool) {
	h, ok := p.handles[spec]
	return h, ok
}

// Add stores a handle under spec. The pool takes ownership and will close
// the handle at Release.
func (p *Pool) Add(spec string, h io.Closer) {
	if _, ok := p.handles[spec]; !ok {
		p.order = append(p.order, spec)
	}
	p.handles[spec] = h
}

// Len returns the number of live handles.
func (p *Pool) Len() int {
	return len(p.handles)
}

// Release flushes and closes every pooled handle in insertion order, then
// empties the pool. Calling Release again is a no-op. The first error is
// returned; release continues past failing handles.
func (p *Pool) Release() error {
	var firstErr error
	for _, spec := range p.order {
		h := p.handles[spec]
		p.log.Debugf("releasing %s", spec)
		if f, ok := h.(Flusher); ok {
			if err := f.Flush(); err != nil && firstErr == nil {
				firstErr = errors.Wrapf(err, "flush %s", spec)
			}
		}
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "close %s", spec)
		}
	}
	p.handles = make(map[string]io.Closer)
	p.order = nil
	return firstErr
}
