package basis

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	twoPi  = 2 * math.Pi
	fourPi = 4 * math.Pi

	pixelCenterOffset = 0.5
)

// Domain selects how a direction vector is folded onto spherical angles.
type Domain int

const (
	// FullSphere maps every unit vector to theta in [0, π].
	FullSphere Domain = iota

	// UpperHemisphere clamps z into [0, 1] before taking acos, so every
	// direction below the horizon lands on theta = π/2. Kept for
	// compatibility with data fitted against hemispherical conventions.
	UpperHemisphere
)

// String returns the configuration name of the domain.
func (d Domain) String() string {
	switch d {
	case FullSphere:
		return "full"
	case UpperHemisphere:
		return "upper"
	default:
		return "unknown"
	}
}

// ParseDomain converts a configuration name to a Domain.
func ParseDomain(s string) (Domain, bool) {
	switch s {
	case "full", "":
		return FullSphere, true
	case "upper", "hemisphere":
		return UpperHemisphere, true
	default:
		return FullSphere, false
	}
}

// ToSpherical converts a unit direction to (phi, theta) under domain d.
// phi is wrapped into [0, 2π). The vector is expected to be unit length;
// it is not normalized.
func (d Domain) ToSpherical(v r3.Vector) (phi, theta float64) {
	phi = math.Atan2(v.Y, v.X)
	if phi < 0 {
		phi += twoPi
	}

	lo := -1.0
	if d == UpperHemisphere {
		lo = 0
	}
	return phi, math.Acos(math.Max(lo, math.Min(1, v.Z)))
}

// ToSpherical converts a unit direction to (phi, theta) over the full sphere.
func ToSpherical(v r3.Vector) (phi, theta float64) {
	return FullSphere.ToSpherical(v)
}

// FromSpherical returns the unit direction for azimuth phi and polar angle theta.
func FromSpherical(phi, theta float64) r3.Vector {
	sinTheta := math.Sin(theta)
	return r3.Vector{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: math.Cos(theta),
	}
}

// PixelToTheta maps row y of an h-row equirectangular image to the polar
// angle of the row center.
func PixelToTheta(y, h int) float64 {
	return math.Pi * (float64(y) + pixelCenterOffset) / float64(h)
}

// PixelToPhi maps column x of a w-column equirectangular image to the
// azimuth of the column center.
func PixelToPhi(x, w int) float64 {
	return twoPi * (float64(x) + pixelCenterOffset) / float64(w)
}
