package stream

import "fmt"

// BaudRateError reports a serial device that did not honor the requested
// baud rate. Callers treat it as fatal.
type BaudRateError struct {
	Device    string
	Requested int
	Actual    int
}

func (e *BaudRateError) Error() string {
	return fmt.Sprintf("serial device %s: requested %d baud, device applied %d",
		e.Device, e.Requested, e.Actual)
}
