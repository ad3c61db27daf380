package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustApply(t *testing.T, o *Options, token string) {
	t.Helper()
	handled, err := o.TryApply(token)
	require.NoError(t, err)
	require.True(t, handled, "token %q not handled", token)
}

func TestTryApply_BooleanForms(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"--dump-update", true},
		{"--dump-update=on", true},
		{"--dump-update=true", true},
		{"--dump-update=off", false},
		{"--dump-update=false", false},
		{"--dump-update=bogus", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			o := newTestOptions()
			mustApply(t, o, tt.token)
			assert.Equal(t, tt.want, o.DumpUpdate)
		})
	}
}

func TestTryApply_AllBooleanNames(t *testing.T) {
	o := newTestOptions()

	mustApply(t, o, "--dump-correct")
	mustApply(t, o, "--est_bias=off")
	mustApply(t, o, "--use_udkf")
	mustApply(t, o, "--use_magnet")
	mustApply(t, o, "--out_N_packet")
	mustApply(t, o, "--in_sylphide")
	mustApply(t, o, "--out_sylphide")

	assert.True(t, o.DumpCorrect)
	assert.False(t, o.EstBias)
	assert.True(t, o.UseUDKF)
	assert.True(t, o.UseMagnet)
	assert.True(t, o.OutIsNPacket)
	assert.True(t, o.InSylphide)
	assert.True(t, o.OutSylphide)
}

func TestTryApply_CombinedGPSTimePair(t *testing.T) {
	o := newTestOptions()

	mustApply(t, o, "--start-gpst=1234:56.5")
	assert.Equal(t, 1234, o.StartGPSWeek)
	assert.Equal(t, 56.5, o.StartGPSTime)

	mustApply(t, o, "--end-gpst=1300:7.25")
	assert.Equal(t, 1300, o.EndGPSWeek)
	assert.Equal(t, 7.25, o.EndGPSTime)
}

func TestTryApply_CombinedFormFallsThroughToGeneric(t *testing.T) {
	// Without a week:seconds pair, the generic single-value form applies
	// and the week field stays untouched.
	o := newTestOptions()

	mustApply(t, o, "--start-gpst=56.5")
	assert.Equal(t, 0, o.StartGPSWeek)
	assert.Equal(t, 56.5, o.StartGPSTime)
}

func TestTryApply_WeekOptions(t *testing.T) {
	o := newTestOptions()

	mustApply(t, o, "--start-gpswn=1234")
	mustApply(t, o, "--end-gpswn=1300")
	assert.Equal(t, 1234, o.StartGPSWeek)
	assert.Equal(t, 1300, o.EndGPSWeek)
}

func TestTryApply_NumericOptions(t *testing.T) {
	o := newTestOptions()

	mustApply(t, o, "--init-yaw-deg=-10.5")
	mustApply(t, o, "--mag_heading_accuracy_deg=1.5")
	assert.Equal(t, -10.5, o.InitYawDeg)
	assert.Equal(t, 1.5, o.MagHeadingAccuracyDeg)
}

func TestTryApply_NumericRequiresValue(t *testing.T) {
	o := newTestOptions()

	handled, err := o.TryApply("--init-yaw-deg")
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Equal(t, 0.0, o.InitYawDeg)
}

func TestTryApply_YawCorrectSpeedTruncates(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"5.7", 5},
		{"5", 5},
		{"-3.2", -3},
		{"0.9", 0},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			o := newTestOptions()
			mustApply(t, o, "--yaw_correct_with_mag_when_speed_less_than_ms="+tt.value)
			assert.Equal(t, tt.want, o.YawCorrectSpeedThresholdMS)
		})
	}
}

func TestTryApply_UnhandledLeavesStateUntouched(t *testing.T) {
	tokens := []string{
		"-short",
		"positional.csv",
		"--",
		"--no-such-option",
		"--no-such-option=1",
	}
	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			o := newTestOptions()
			before := *o

			handled, err := o.TryApply(token)
			require.NoError(t, err)
			assert.False(t, handled)
			assert.Equal(t, before, *o)
		})
	}
}

func TestTryApply_ParseErrorReported(t *testing.T) {
	o := newTestOptions()

	handled, err := o.TryApply("--init-yaw-deg=abc")
	assert.True(t, handled)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init-yaw-deg")
}

func TestTryApply_OutOption(t *testing.T) {
	o := newTestOptions()
	path := filepath.Join(t.TempDir(), "out.csv")

	mustApply(t, o, "--out="+path)
	assert.NotSame(t, os.Stdout, o.Out)

	_, err := o.Out.Write([]byte("row\n"))
	require.NoError(t, err)
	require.NoError(t, o.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "row\n", string(data))
}

func TestTryApply_OutRequiresValue(t *testing.T) {
	o := newTestOptions()

	handled, err := o.TryApply("--out")
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Same(t, os.Stdout, o.Out)
}
