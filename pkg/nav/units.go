package nav

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Deg2Rad converts an angle from degrees to radians.
func Deg2Rad[F constraints.Float](degrees F) F {
	return degrees * math.Pi / 180
}

// Rad2Deg converts an angle from radians to degrees.
func Rad2Deg[F constraints.Float](radians F) F {
	return radians * 180 / math.Pi
}
