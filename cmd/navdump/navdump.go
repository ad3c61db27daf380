package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/sylphide-io/navcore/pkg/nav"
	"github.com/sylphide-io/navcore/pkg/options"
)

// epoch is one parsed input row. Angles are held in radians so the value
// can act as a nav.Data provider.
type epoch struct {
	itow  float64
	lon   float64
	lat   float64
	h     float64
	vn    float64
	ve    float64
	vd    float64
	psi   float64
	theta float64
	phi   float64
	alpha float64
}

func (e epoch) Longitude() float64 { return e.lon }
func (e epoch) Latitude() float64  { return e.lat }
func (e epoch) Height() float64    { return e.h }
func (e epoch) VNorth() float64    { return e.vn }
func (e epoch) VEast() float64     { return e.ve }
func (e epoch) VDown() float64     { return e.vd }
func (e epoch) Heading() float64   { return e.psi }
func (e epoch) Pitch() float64     { return e.theta }
func (e epoch) Roll() float64      { return e.phi }
func (e epoch) Azimuth() float64   { return e.alpha }

// parseEpoch converts one CSV record into an epoch. The trailing azimuth
// column is optional.
func parseEpoch(record []string) (epoch, error) {
	if len(record) < 10 {
		return epoch{}, errors.Errorf("expected at least 10 fields, got %d", len(record))
	}
	n := min(len(record), 11)
	vals := make([]float64, n)
	for i, s := range record[:n] {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return epoch{}, errors.Wrapf(err, "field %d", i)
		}
		vals[i] = f
	}
	e := epoch{
		itow:  vals[0],
		lat:   nav.Deg2Rad(vals[1]),
		lon:   nav.Deg2Rad(vals[2]),
		h:     vals[3],
		vn:    vals[4],
		ve:    vals[5],
		vd:    vals[6],
		psi:   nav.Deg2Rad(vals[7]),
		theta: nav.Deg2Rad(vals[8]),
		phi:   nav.Deg2Rad(vals[9]),
	}
	if n > 10 {
		e.alpha = nav.Deg2Rad(vals[10])
	}
	return e, nil
}

// run resolves the input spec, then streams accepted epochs to the
// configured output as N0 packets or text rows.
func run(opts *options.Options, inputSpec string, log *logrus.Logger) error {
	in, err := opts.Resolver().ResolveInput(inputSpec, false)
	if err != nil {
		return err
	}

	reader := in
	if f, ok := in.(*os.File); ok && f != os.Stdin {
		if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
			bar := progressbar.DefaultBytes(fi.Size(), "navdump")
			reader = io.TeeReader(f, bar)
		}
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1

	wroteLabel := false
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warnf("skipping row: %v", err)
			continue
		}
		e, err := parseEpoch(record)
		if err != nil {
			log.Warnf("skipping row: %v", err)
			continue
		}
		if !opts.InRange(e.itow) {
			continue
		}

		if opts.OutIsNPacket {
			p := nav.EncodeN0(e.itow, e)
			if _, err := opts.Out.Write(p[:]); err != nil {
				return errors.Wrap(err, "write N0 packet")
			}
			continue
		}
		if !wroteLabel {
			if _, err := fmt.Fprintf(opts.Out, "itow, %s\n", nav.Label()); err != nil {
				return errors.Wrap(err, "write header")
			}
			wroteLabel = true
		}
		itow := strconv.FormatFloat(e.itow, 'g', -1, 64)
		if _, err := fmt.Fprintf(opts.Out, "%s, %s\n", itow, nav.Dump(e)); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	return nil
}
