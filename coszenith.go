// Package coszenith computes the cosine of the solar zenith angle, the
// standard measure of solar illumination used to condition weather and
// climate models on day/night and sun-angle information.
//
// Two entry-point families are provided:
//
//   - Calendar-time functions take a time.Time (normalized to UTC; a naive
//     wall-clock time is treated as UTC by construction).
//   - Timestamp functions take UNIX epoch seconds and are pure arithmetic
//     end to end, so they can sit inside a batched numeric pipeline with no
//     calendar objects in the data flow.
//
// Both families agree to floating-point tolerance for the same physical
// instant. Longitude is degrees east positive, latitude degrees north
// positive. The returned cosine is 1 with the Sun directly overhead,
// negative with the Sun below the horizon, and is deliberately not clamped
// to [-1, 1]: floating-point error may push it marginally outside.
//
// Every function is pure and side-effect-free; concurrent use needs no
// coordination.
package coszenith

import (
	"errors"
	"time"

	"github.com/soniakeys/unit"

	"github.com/nbren12/coszenith/internal/sun"
	"github.com/nbren12/coszenith/internal/timeutil"
)

// ErrLengthMismatch is returned by the batch entry points when the argument
// slices cannot be broadcast together: each slice must have either length 1
// or the common length of the longest argument.
var ErrLengthMismatch = errors.New("slice lengths do not broadcast")

// CosZenithAngle returns the cosine of the solar zenith angle at time t for
// an observer at lonDeg (degrees east) and latDeg (degrees north).
//
// Latitude and longitude are not range-checked: the formulas are periodic,
// so out-of-range values are accepted and NaN/Inf inputs propagate.
func CosZenithAngle(t time.Time, lonDeg, latDeg float64) float64 {
	c := timeutil.JulianCenturies(t)
	return sun.CosZenith(c, unit.AngleFromDeg(lonDeg), unit.AngleFromDeg(latDeg))
}

// CosZenithAngleFromTimestamp is CosZenithAngle for a UNIX timestamp in
// seconds. The entire call chain is arithmetic on float64, with no calendar
// objects and no data-dependent branching.
func CosZenithAngleFromTimestamp(sec, lonDeg, latDeg float64) float64 {
	c := timeutil.JulianCenturiesFromTimestamp(sec)
	return sun.CosZenith(c, unit.AngleFromDeg(lonDeg), unit.AngleFromDeg(latDeg))
}

// SunAboveHorizon reports whether the Sun's center is above the geometric
// horizon (cosine of the zenith angle > 0) at time t for the given
// coordinates. Refraction is not modeled.
func SunAboveHorizon(t time.Time, lonDeg, latDeg float64) bool {
	return CosZenithAngle(t, lonDeg, latDeg) > 0
}

// -----------------------------
// Batch (broadcast) entry points
// -----------------------------

// CosZenithAngles evaluates CosZenithAngle element-wise over slices.
// Each argument must have length 1 or the common broadcast length; length-1
// arguments are repeated. The result has the broadcast length.
func CosZenithAngles(times []time.Time, lonDeg, latDeg []float64) ([]float64, error) {
	n, err := broadcastLen(len(times), len(lonDeg), len(latDeg))
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = CosZenithAngle(pickTime(times, i), pick(lonDeg, i), pick(latDeg, i))
	}
	return out, nil
}

// CosZenithAnglesFromTimestamps evaluates CosZenithAngleFromTimestamp
// element-wise over slices, with the same broadcast rule as CosZenithAngles.
func CosZenithAnglesFromTimestamps(sec, lonDeg, latDeg []float64) ([]float64, error) {
	n, err := broadcastLen(len(sec), len(lonDeg), len(latDeg))
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = CosZenithAngleFromTimestamp(pick(sec, i), pick(lonDeg, i), pick(latDeg, i))
	}
	return out, nil
}

// CosZenithField evaluates the cosine of the solar zenith angle at time t
// over a lon/lat grid given by its axes, returning a
// [len(latDeg)][len(lonDeg)] field. This is the shape a forecasting-model
// input pipeline appends as an extra channel: one value per grid cell for a
// single forecast timestamp.
func CosZenithField(t time.Time, lonDeg, latDeg []float64) [][]float64 {
	return fieldAt(timeutil.JulianCenturies(t), lonDeg, latDeg)
}

// CosZenithFieldFromTimestamp is CosZenithField for a UNIX timestamp in
// seconds.
func CosZenithFieldFromTimestamp(sec float64, lonDeg, latDeg []float64) [][]float64 {
	return fieldAt(timeutil.JulianCenturiesFromTimestamp(sec), lonDeg, latDeg)
}

func fieldAt(c float64, lonDeg, latDeg []float64) [][]float64 {
	lons := make([]unit.Angle, len(lonDeg))
	for j, d := range lonDeg {
		lons[j] = unit.AngleFromDeg(d)
	}

	field := make([][]float64, len(latDeg))
	for i, d := range latDeg {
		lat := unit.AngleFromDeg(d)
		row := make([]float64, len(lons))
		for j := range lons {
			row[j] = sun.CosZenith(c, lons[j], lat)
		}
		field[i] = row
	}
	return field
}

// broadcastLen returns the common broadcast length for the given slice
// lengths: every length must equal 1 or the maximum.
func broadcastLen(lens ...int) (int, error) {
	n := 0
	for _, l := range lens {
		if l > n {
			n = l
		}
	}
	for _, l := range lens {
		if l != n && l != 1 {
			return 0, ErrLengthMismatch
		}
	}
	return n, nil
}

func pick(s []float64, i int) float64 {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}

func pickTime(s []time.Time, i int) time.Time {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}
