package stream

import (
	"io"

	"go.bug.st/serial"
)

// Port is the capability the resolver needs from an open serial
// connection.
type Port interface {
	io.ReadWriteCloser

	// SetBaudRate requests a rate and returns the rate the device
	// actually applied.
	SetBaudRate(rate int) (int, error)
}

// PortOpener opens serial connections by device name.
type PortOpener interface {
	Open(name string) (Port, error)
}

// SerialOpener is the default PortOpener, backed by go.bug.st/serial.
type SerialOpener struct{}

// NewSerialOpener returns the default serial capability.
func NewSerialOpener() *SerialOpener {
	return &SerialOpener{}
}

// Open opens the named device with 8N1 framing at the driver default
// rate.
func (*SerialOpener) Open(name string) (Port, error) {
	p, err := serial.Open(name, &serial.Mode{})
	if err != nil {
		return nil, err
	}
	return &serialPort{port: p}, nil
}

type serialPort struct {
	port serial.Port
}

func (s *serialPort) Read(b []byte) (int, error)  { return s.port.Read(b) }
func (s *serialPort) Write(b []byte) (int, error) { return s.port.Write(b) }
func (s *serialPort) Close() error                { return s.port.Close() }

// SetBaudRate reconfigures the port. The driver reports configuration
// failure rather than silently substituting a rate, so a successful
// SetMode means the requested rate is in effect.
func (s *serialPort) SetBaudRate(rate int) (int, error) {
	if err := s.port.SetMode(&serial.Mode{BaudRate: rate}); err != nil {
		return 0, err
	}
	return rate, nil
}
