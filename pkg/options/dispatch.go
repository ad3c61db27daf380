package options

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// optionSpec is one dispatch-table entry. Boolean entries accept the bare
// "--name" form, meaning true; every other kind requires "--name=value"
// and is not matched without one. apply returns the display string echoed
// to the diagnostic logger.
type optionSpec struct {
	name    string
	boolean bool
	apply   func(o *Options, value string) (string, error)
}

// registry lists the recognized options in match order. Names are
// mutually exclusive, so first match wins trivially.
var registry = []optionSpec{
	{name: "start-gpst", apply: func(o *Options, v string) (string, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", err
		}
		o.StartGPSTime = f
		return formatFloat(f), nil
	}},
	{name: "start-gpswn", apply: func(o *Options, v string) (string, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return "", err
		}
		o.StartGPSWeek = n
		return strconv.Itoa(n), nil
	}},
	{name: "end-gpst", apply: func(o *Options, v string) (string, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", err
		}
		o.EndGPSTime = f
		return formatFloat(f), nil
	}},
	{name: "end-gpswn", apply: func(o *Options, v string) (string, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return "", err
		}
		o.EndGPSWeek = n
		return strconv.Itoa(n), nil
	}},
	{name: "dump-update", boolean: true, apply: func(o *Options, v string) (string, error) {
		o.DumpUpdate = isTrue(v)
		return onOff(o.DumpUpdate), nil
	}},
	{name: "dump-correct", boolean: true, apply: func(o *Options, v string) (string, error) {
		o.DumpCorrect = isTrue(v)
		return onOff(o.DumpCorrect), nil
	}},
	{name: "init-yaw-deg", apply: func(o *Options, v string) (string, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", err
		}
		o.InitYawDeg = f
		return formatFloat(f) + " [deg]", nil
	}},
	{name: "est_bias", boolean: true, apply: func(o *Options, v string) (string, error) {
		o.EstBias = isTrue(v)
		return onOff(o.EstBias), nil
	}},
	{name: "use_udkf", boolean: true, apply: func(o *Options, v string) (string, error) {
		o.UseUDKF = isTrue(v)
		return onOff(o.UseUDKF), nil
	}},
	{name: "use_magnet", boolean: true, apply: func(o *Options, v string) (string, error) {
		o.UseMagnet = isTrue(v)
		return onOff(o.UseMagnet), nil
	}},
	{name: "mag_heading_accuracy_deg", apply: func(o *Options, v string) (string, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", err
		}
		o.MagHeadingAccuracyDeg = f
		return formatFloat(f) + " [deg]", nil
	}},
	{name: "yaw_correct_with_mag_when_speed_less_than_ms", apply: func(o *Options, v string) (string, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", err
		}
		// The threshold truncates to a whole number of m/s; fractional
		// values are not kept.
		o.YawCorrectSpeedThresholdMS = math.Trunc(f)
		return formatFloat(o.YawCorrectSpeedThresholdMS) + " [m/s]", nil
	}},
	{name: "out_N_packet", boolean: true, apply: func(o *Options, v string) (string, error) {
		o.OutIsNPacket = isTrue(v)
		return onOff(o.OutIsNPacket), nil
	}},
	{name: "out", apply: func(o *Options, v string) (string, error) {
		w, err := o.resolver.ResolveOutput(v, false)
		if err != nil {
			return "", err
		}
		o.Out = w
		return v, nil
	}},
	{name: "in_sylphide", boolean: true, apply: func(o *Options, v string) (string, error) {
		o.InSylphide = isTrue(v)
		return onOff(o.InSylphide), nil
	}},
	{name: "out_sylphide", boolean: true, apply: func(o *Options, v string) (string, error) {
		o.OutSylphide = isTrue(v)
		return onOff(o.OutSylphide), nil
	}},
}

// TryApply matches token against the option registry and applies the
// first match. It returns false when the token is not an option token or
// names nothing in the registry; the state is untouched in that case. A
// matched option with an unparsable value returns true with an error.
func (o *Options) TryApply(token string) (bool, error) {
	if !strings.HasPrefix(token, "--") {
		return false, nil
	}
	body := token[2:]

	// The combined week:seconds forms take precedence over the generic
	// single-value forms of the same names.
	if o.tryGPSTimePair(body) {
		return true, nil
	}

	name, value := body, ""
	hasValue := false
	if i := strings.IndexByte(body, '='); i >= 0 {
		name, value = body[:i], body[i+1:]
		hasValue = true
	}
	for _, spec := range registry {
		if spec.name != name {
			continue
		}
		if !hasValue {
			if !spec.boolean {
				return false, nil
			}
			value = "true"
		}
		disp, err := spec.apply(o, value)
		if err != nil {
			return true, errors.Wrapf(err, "option %s", name)
		}
		o.log.Infof("%s: %s", name, disp)
		return true, nil
	}
	return false, nil
}

// tryGPSTimePair parses the combined "start-gpst=<week>:<seconds>" and
// "end-gpst=<week>:<seconds>" bodies, setting week and seconds together.
// A body that does not parse as a pair falls through to the generic
// single-value forms.
func (o *Options) tryGPSTimePair(body string) bool {
	for _, c := range []struct {
		name string
		week *int
		sec  *float64
	}{
		{"start-gpst", &o.StartGPSWeek, &o.StartGPSTime},
		{"end-gpst", &o.EndGPSWeek, &o.EndGPSTime},
	} {
		v, ok := strings.CutPrefix(body, c.name+"=")
		if !ok {
			continue
		}
		ws, ss, ok := strings.Cut(v, ":")
		if !ok {
			continue
		}
		week, err := strconv.Atoi(ws)
		if err != nil {
			continue
		}
		sec, err := strconv.ParseFloat(ss, 64)
		if err != nil {
			continue
		}
		*c.week = week
		*c.sec = sec
		o.log.Infof("%s: %d:%s", c.name, week, formatFloat(sec))
		return true
	}
	return false
}

// isTrue reports whether an explicit option value means true. Anything
// other than "on" or "true" means false.
func isTrue(v string) bool {
	return v == "on" || v == "true"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
