package main

import "math"

// Default command-line flag values
const (
	defaultOrder   = 2
	defaultSamples = 10000
	defaultSeed    = 1
)

// Random source
const (
	// seedStream is mixed into the seed to form the second PCG word.
	seedStream = 0x9e3779b97f4a7c15
)

// Integrand parameters
const (
	skyAmbient  = 0.2 // sky radiance at and below the horizon
	skyZenith   = 0.8 // additional radiance towards the zenith
	sunExponent = 64  // sharpness of the sun lobe

	sunPhi   = math.Pi / 4
	sunTheta = math.Pi / 6
)

// File permissions
const (
	reportFileMode = 0o644
)
