// Package options holds the shared configuration state for the
// post-processing tools and the option-token dispatcher that mutates it.
package options

import (
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sylphide-io/navcore/pkg/stream"
)

// Options is the option-derived configuration shared by a whole run.
// Construct it with New, mutate it through TryApply, and Close it to
// release every pooled stream.
type Options struct {
	DumpUpdate   bool // dump states at time updates
	DumpCorrect  bool // dump states at measurement updates
	EstBias      bool
	UseUDKF      bool
	UseMagnet    bool
	OutIsNPacket bool
	InSylphide   bool
	OutSylphide  bool

	InitYawDeg                 float64
	MagHeadingAccuracyDeg      float64
	YawCorrectSpeedThresholdMS float64 // non-positive disables the correction

	StartGPSTime float64 // seconds of week
	StartGPSWeek int
	EndGPSTime   float64
	EndGPSWeek   int

	// Out is the primary output stream; "--out=<spec>" replaces it.
	Out io.Writer

	pool     *stream.Pool
	resolver *stream.Resolver
	log      *logrus.Logger
}

// New returns an Options carrying the conventional defaults: dump at time
// updates, estimate biases, accept every epoch, write to stdout.
func New(log *logrus.Logger) *Options {
	pool := stream.NewPool(log)
	return &Options{
		DumpUpdate:                 true,
		EstBias:                    true,
		MagHeadingAccuracyDeg:      3,
		YawCorrectSpeedThresholdMS: 5,
		EndGPSTime:                 math.MaxFloat64,
		Out:                        os.Stdout,
		pool:                       pool,
		resolver:                   stream.NewResolver(pool, stream.NewSerialOpener(), log),
		log:                        log,
	}
}

// Resolver exposes the stream resolver backing the "out" option so
// callers can resolve their input specs through the same pool.
func (o *Options) Resolver() *stream.Resolver {
	return o.resolver
}

// Close releases every pooled stream. Safe to call more than once.
func (o *Options) Close() error {
	return o.pool.Release()
}

// InRange reports whether a GPS time of week lies inside the configured
// bounds, both ends inclusive. Week numbers are stored but not consulted,
// so a range spanning a week rollover is not understood.
func (o *Options) InRange(t float64) bool {
	return t >= o.StartGPSTime && t <= o.EndGPSTime
}
