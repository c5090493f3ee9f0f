package sun

import (
	"math"

	"github.com/soniakeys/unit"
)

// Equatorial represents the Sun's geocentric equatorial coordinates in
// radians. RA is left unwrapped in (-π, π].
type Equatorial struct {
	RA  unit.RA
	Dec unit.Angle
}

// obliquityJ2000 is the obliquity of the ecliptic at J2000.0: 23°26'21.406".
var obliquityJ2000 = unit.NewAngle(' ', 23, 26, 21.406)

// EclipticLongitude returns the Sun's true ecliptic longitude at c Julian
// centuries since J2000.0: mean longitude plus the equation of center.
//
// This is a standard low/medium-precision solar model, good to arcminute
// level (http://www.geoastro.de/elevaz/basics/meeus.htm). The returned
// angle is unwrapped; only its sine and cosine are consumed downstream.
func EclipticLongitude(c float64) unit.Angle {
	// Mean anomaly of the Sun.
	g := unit.AngleFromDeg(357.52910 +
		35999.05030*c -
		0.0001559*c*c -
		0.00000048*c*c*c).Rad()

	// Mean longitude of the Sun.
	q := unit.AngleFromDeg(280.46645 + 36000.76983*c + 0.0003032*c*c)

	// Equation of center: three harmonics of the mean anomaly.
	dl := unit.AngleFromDeg(
		(1.914600-0.004817*c-0.000014*c*c)*math.Sin(g) +
			(0.019993-0.000101*c)*math.Sin(2*g) +
			0.000290*math.Sin(3*g))

	return q + dl
}

// Obliquity returns the obliquity of the ecliptic at c Julian centuries
// since J2000.0: the J2000 base angle minus a quintic polynomial correction
// in arcseconds (https://en.wikipedia.org/wiki/Ecliptic#Obliquity_of_the_ecliptic).
func Obliquity(c float64) unit.Angle {
	corr := (46.836769*c -
		0.0001831*c*c +
		0.00200340*c*c*c -
		0.576e-6*c*c*c*c -
		4.34e-8*c*c*c*c*c) / 3600.0
	return obliquityJ2000 - unit.AngleFromDeg(corr)
}

// GeocentricEquatorial returns the Sun's right ascension and declination at
// c Julian centuries since J2000.0, by projecting the ecliptic-longitude
// unit vector through the obliquity rotation.
//
// RA uses the half-angle form 2·atan2(y, x+r), which avoids quadrant
// ambiguity at the poles of the transformation.
func GeocentricEquatorial(c float64) Equatorial {
	eps := Obliquity(c).Rad()
	eclon := EclipticLongitude(c).Rad()

	x := math.Cos(eclon)
	y := math.Cos(eps) * math.Sin(eclon)
	z := math.Sin(eps) * math.Sin(eclon)
	r := math.Sqrt(1.0 - z*z)

	return Equatorial{
		RA:  unit.RA(2 * math.Atan2(y, x+r)),
		Dec: unit.Angle(math.Atan2(z, r)),
	}
}
