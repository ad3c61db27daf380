package stream

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Resolver maps textual endpoint specs to live streams. A spec of "-"
// means process stdio, a spec starting with the platform serial prefix
// names a serial device with an optional ":baudrate" suffix, and anything
// else is a filesystem path opened in binary mode. Non-stdio handles are
// memoized in the pool under the complete spec string, so resolving the
// same spec again returns the handle already open. Every resolution
// writes a trace line to the logger, cache hits included.
type Resolver struct {
	pool   *Pool
	serial PortOpener
	log    *logrus.Logger

	stdin  io.Reader
	stdout io.Writer
}

// NewResolver returns a resolver that stores its handles in pool and
// opens serial devices through opener.
func NewResolver(pool *Pool, opener PortOpener, log *logrus.Logger) *Resolver {
	return &Resolver{
		pool:   pool,
		serial: opener,
		log:    log,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// ResolveInput resolves spec to a readable stream. When forceFile is set
// the stdio and serial interpretations are skipped and spec is treated as
// a path. A file that cannot be opened for reading is an error the caller
// must treat as fatal.
func (r *Resolver) ResolveInput(spec string, forceFile bool) (io.Reader, error) {
	if !forceFile {
		if spec == "-" {
			r.log.Info("[stdin]")
			return r.stdin, nil
		}
		if strings.HasPrefix(spec, serialPrefix) {
			return r.resolveSerial(spec)
		}
	}
	if h, ok := r.pool.Lookup(spec); ok {
		r.log.Infof("%s (pooled)", spec)
		in, ok := h.(io.Reader)
		if !ok {
			return nil, errors.Errorf("pooled handle for %s is not readable", spec)
		}
		return in, nil
	}
	r.log.Infof("opening %s", spec)
	f, err := os.Open(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s for reading", spec)
	}
	r.pool.Add(spec, f)
	return f, nil
}

// ResolveOutput resolves spec to a writable stream. File targets are
// created or truncated and write through a buffer that the pool flushes
// at release.
func (r *Resolver) ResolveOutput(spec string, forceFile bool) (io.Writer, error) {
	if !forceFile {
		if spec == "-" {
			r.log.Info("[stdout]")
			return r.stdout, nil
		}
		if strings.HasPrefix(spec, serialPrefix) {
			return r.resolveSerial(spec)
		}
	}
	if h, ok := r.pool.Lookup(spec); ok {
		r.log.Infof("%s (pooled)", spec)
		out, ok := h.(io.Writer)
		if !ok {
			return nil, errors.Errorf("pooled handle for %s is not writable", spec)
		}
		return out, nil
	}
	r.log.Infof("creating %s", spec)
	f, err := os.Create(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s for writing", spec)
	}
	b := newBufferedFile(f)
	r.pool.Add(spec, b)
	return b, nil
}

// resolveSerial opens or reuses the serial device named by spec. The pool
// key is the complete spec, including any ":baudrate" suffix, so the same
// device requested at two rates is two distinct pool entries.
func (r *Resolver) resolveSerial(spec string) (Port, error) {
	if h, ok := r.pool.Lookup(spec); ok {
		r.log.Infof("%s (pooled)", spec)
		port, ok := h.(Port)
		if !ok {
			return nil, errors.Errorf("pooled handle for %s is not a serial port", spec)
		}
		return port, nil
	}

	device := spec
	baud := 0
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		b, err := strconv.Atoi(spec[i+1:])
		if err != nil {
			return nil, errors.Wrapf(err, "baud rate in %s", spec)
		}
		device, baud = spec[:i], b
	}

	r.log.Infof("opening %s", spec)
	port, err := r.serial.Open(device)
	if err != nil {
		return nil, errors.Wrapf(err, "open serial device %s", device)
	}
	if baud != 0 {
		actual, err := port.SetBaudRate(baud)
		if err != nil {
			_ = port.Close()
			return nil, errors.Wrapf(err, "set baud rate on %s", device)
		}
		if actual != baud {
			_ = port.Close()
			return nil, &BaudRateError{Device: device, Requested: baud, Actual: actual}
		}
	}
	r.pool.Add(spec, port)
	return port, nil
}

// bufferedFile pairs an output file with a write buffer so pooled outputs
// get a real flush before close.
type bufferedFile struct {
	*bufio.Writer
	f *os.File
}

func newBufferedFile(f *os.File) *bufferedFile {
	return &bufferedFile{Writer: bufio.NewWriter(f), f: f}
}

func (b *bufferedFile) Close() error {
	if err := b.Flush(); err != nil {
		_ = b.f.Close()
		return err
	}
	return b.f.Close()
}
