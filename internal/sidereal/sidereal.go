// Package sidereal converts Julian centuries since J2000.0 into Greenwich
// and local mean sidereal time.
package sidereal

import (
	"github.com/soniakeys/unit"
)

// Greenwich returns Greenwich Mean Sidereal Time for c Julian centuries
// since J2000.0, wrapped to [0, 2π).
//
// The polynomial follows the AIAA 2006 implementation
// (http://www.celestrak.com/publications/AIAA/2006-6753/): evaluated in
// seconds of time, then divided by 240 to convert to degrees.
func Greenwich(c float64) unit.Angle {
	theta := 67310.54841 + c*(876600*3600+8640184.812866+c*(0.093104-c*6.2e-5))
	return unit.AngleFromDeg(theta / 240.0).Mod1()
}

// Local returns Local Mean Sidereal Time: Greenwich sidereal time plus the
// observer's east longitude. The sum is left unwrapped; the hour angle
// derived from it only ever feeds a cosine.
func Local(c float64, lon unit.Angle) unit.Angle {
	return Greenwich(c) + lon
}
