package sun

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/nbren12/coszenith/internal/sidereal"
)

// HourAngle returns the Sun's local hour angle at c Julian centuries since
// J2000.0 for an observer at east longitude lon: local mean sidereal time
// minus right ascension
// (https://en.wikipedia.org/wiki/Hour_angle#Relation_with_the_right_ascension).
// The result is unwrapped.
func HourAngle(c float64, lon unit.Angle) unit.HourAngle {
	eq := GeocentricEquatorial(c)
	return unit.HourAngle(sidereal.Local(c, lon) - unit.Angle(eq.RA))
}

// CosZenith returns the cosine of the solar zenith angle at c Julian
// centuries since J2000.0 for an observer at east longitude lon and
// latitude lat, via the spherical law of cosines:
//
//	cos Z = sin φ sin δ + cos φ cos δ cos H
//
// The result is not clamped to [-1, 1]; floating-point error may push it
// marginally outside, and callers are expected to tolerate that. NaN or Inf
// inputs propagate through the trigonometric chain.
func CosZenith(c float64, lon, lat unit.Angle) float64 {
	eq := GeocentricEquatorial(c)
	h := sidereal.Local(c, lon) - unit.Angle(eq.RA)

	sinLat, cosLat := math.Sincos(lat.Rad())
	sinDec, cosDec := math.Sincos(eq.Dec.Rad())
	return sinLat*sinDec + cosLat*cosDec*math.Cos(h.Rad())
}
