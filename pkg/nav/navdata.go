// Package nav defines the navigation-state snapshot view consumed by the
// text dump and the N0 telemetry encoder.
package nav

import (
	"strconv"
	"strings"
)

// Data is a read-only view of one navigation solution epoch. Positions are
// in radians and meters, velocities in m/s, attitude angles in radians.
// Any provider exposing these ten accessors can be dumped or encoded.
type Data interface {
	Longitude() float64
	Latitude() float64
	Height() float64
	VNorth() float64
	VEast() float64
	VDown() float64
	Heading() float64
	Pitch() float64
	Roll() float64
	Azimuth() float64
}

// labels matches the column order produced by Dump.
var labels = []string{
	"longitude",
	"latitude",
	"height",
	"v_north",
	"v_east",
	"v_down",
	"Yaw(psi)",
	"Pitch(theta)",
	"Roll(phi)",
	"Azimuth(alpha)",
}

// Label returns the comma-separated header row matching Dump's columns.
func Label() string {
	return strings.Join(labels, ", ")
}

// Dump returns one comma-separated data row for the snapshot. Angular
// quantities are converted from radians to degrees at output time.
func Dump(d Data) string {
	fields := []float64{
		Rad2Deg(d.Longitude()),
		Rad2Deg(d.Latitude()),
		d.Height(),
		d.VNorth(),
		d.VEast(),
		d.VDown(),
		Rad2Deg(d.Heading()),
		Rad2Deg(d.Pitch()),
		Rad2Deg(d.Roll()),
		Rad2Deg(d.Azimuth()),
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(out, ", ")
}
