/*
Navdump converts textual navigation-state rows into comma-separated state
dumps or 32-byte N0 telemetry records.

Usage:

	navdump [--option[=value] ...] <input spec>

Tokens are matched against the shared option registry (see pkg/options);
the one token the registry does not handle names the input. The input spec
may be "-" for stdin, a serial device with an optional ":baudrate" suffix,
or a file path. Input rows are

	itow,lat_deg,lon_deg,height,v_north,v_east,v_down,heading_deg,pitch_deg,roll_deg[,azimuth_deg]

Rows whose itow falls outside the configured GPS time range are skipped.
With --out_N_packet each accepted row is written to the output stream as
an N0 record; otherwise a header row and one text row per epoch are
written.
*/
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sylphide-io/navcore/pkg/options"
)

func main() {
	var exitCode int
	defer func() {
		os.Exit(exitCode)
	}()

	log := logrus.StandardLogger()

	opts := options.New(log)
	defer func() {
		if err := opts.Close(); err != nil {
			log.Errorf("releasing streams: %v", err)
		}
	}()

	var inputs []string
	for _, arg := range os.Args[1:] {
		handled, err := opts.TryApply(arg)
		if err != nil {
			log.Errorf("%v", err)
			exitCode = 1
			return
		}
		if !handled {
			inputs = append(inputs, arg)
		}
	}
	if len(inputs) != 1 {
		log.Error("usage: navdump [--option[=value] ...] <input spec>")
		exitCode = 1
		return
	}

	if err := run(opts, inputs[0], log); err != nil {
		log.Errorf("%v", err)
		exitCode = 1
	}
}
