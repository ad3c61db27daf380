package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylphide-io/navcore/pkg/nav"
	"github.com/sylphide-io/navcore/pkg/options"
)

func newTestOptions() *options.Options {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return options.New(log)
}

func TestParseEpoch(t *testing.T) {
	record := strings.Split("100.5,12.3,98.7,250.0,1.5,-0.5,0.25,90,5,-2", ",")

	e, err := parseEpoch(record)
	require.NoError(t, err)

	assert.Equal(t, 100.5, e.itow)
	assert.Equal(t, nav.Deg2Rad(12.3), e.lat)
	assert.Equal(t, nav.Deg2Rad(98.7), e.lon)
	assert.Equal(t, 250.0, e.h)
	assert.Equal(t, 1.5, e.vn)
	assert.Equal(t, -0.5, e.ve)
	assert.Equal(t, 0.25, e.vd)
	assert.Equal(t, nav.Deg2Rad(90.0), e.psi)
	assert.Equal(t, nav.Deg2Rad(5.0), e.theta)
	assert.Equal(t, nav.Deg2Rad(-2.0), e.phi)
	assert.Equal(t, 0.0, e.alpha)
}

func TestParseEpoch_OptionalAzimuth(t *testing.T) {
	record := strings.Split("1,0,0,0,0,0,0,0,0,0,45", ",")

	e, err := parseEpoch(record)
	require.NoError(t, err)
	assert.Equal(t, nav.Deg2Rad(45.0), e.alpha)
}

func TestParseEpoch_Errors(t *testing.T) {
	_, err := parseEpoch(strings.Split("1,2,3", ","))
	require.Error(t, err)

	_, err = parseEpoch(strings.Split("1,2,x,4,5,6,7,8,9,10", ","))
	require.Error(t, err)
}

func TestRun_TextOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte(
		"5.0,1,2,3,0,0,0,0,0,0\n"+
			"10.0,1,2,3,0,0,0,0,0,0\n"+
			"15.0,1,2,3,0,0,0,0,0,0\n"), 0o644))

	opts := newTestOptions()
	defer func() { _ = opts.Close() }()
	var out strings.Builder
	opts.Out = &out
	opts.StartGPSTime = 8
	opts.EndGPSTime = 12

	require.NoError(t, run(opts, in, logrus.StandardLogger()))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2, "one header plus the single in-range epoch")
	assert.Equal(t, "itow, "+nav.Label(), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "10, "))
}

func TestRun_PacketOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte(
		"1.0,0,0,0,0,0,0,0,0,0\n"+
			"2.0,0,0,0,0,0,0,0,0,0\n"), 0o644))

	opts := newTestOptions()
	defer func() { _ = opts.Close() }()
	var out strings.Builder
	opts.Out = &out
	opts.OutIsNPacket = true

	require.NoError(t, run(opts, in, logrus.StandardLogger()))

	data := []byte(out.String())
	require.Len(t, data, 64, "two 32-byte records")
	assert.Equal(t, byte('N'), data[0])
	assert.Equal(t, byte('N'), data[32])
}

func TestRun_MissingInputIsError(t *testing.T) {
	opts := newTestOptions()
	defer func() { _ = opts.Close() }()

	err := run(opts, filepath.Join(t.TempDir(), "absent.csv"), logrus.StandardLogger())
	require.Error(t, err)
}
