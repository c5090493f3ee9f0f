// Package timeutil converts calendar times and UNIX timestamps into the
// Julian-century offsets consumed by the sidereal and solar formula chains.
package timeutil

import (
	"math"
	"time"
)

// -----------------------------
// Reference epoch (J2000.0)
// -----------------------------

// j2000 is the reference epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// UnixJ2000 is the UNIX timestamp of the reference epoch in seconds
// (946728000). Evaluated once at init so the timestamp path stays pure
// arithmetic at call time.
var UnixJ2000 = float64(j2000.Unix())

const (
	secondsPerDay        = 86400.0
	daysPerJulianCentury = 36525.0
)

// DaysFrom2000 returns the number of days between t and the reference epoch.
// t is normalized to UTC; sub-second precision is preserved. Dates before
// the epoch yield negative values.
func DaysFrom2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

// JulianCenturies returns centuries since the reference epoch for a
// calendar time.
func JulianCenturies(t time.Time) float64 {
	return DaysFrom2000(t) / daysPerJulianCentury
}

// JulianCenturiesFromTimestamp returns centuries since the reference epoch
// for a UNIX timestamp in seconds. No calendar objects are involved, so
// this path can run inside a batched numeric pipeline.
func JulianCenturiesFromTimestamp(sec float64) float64 {
	return (sec - UnixJ2000) / secondsPerDay / daysPerJulianCentury
}

// -----------------------------
// Basic degree/radian helpers
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}
