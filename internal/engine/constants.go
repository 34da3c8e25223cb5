package engine

import "math"

// Sphere geometry constants
const (
	twoPi      = 2 * math.Pi
	sphereArea = 4 * math.Pi // total solid angle in steradians
)

// Color channel layout
const (
	channelR = 0
	channelG = 1
	channelB = 2

	colorChannels = 3
)

// Least-squares constants
const (
	// machineEpsilon is the float64 unit roundoff, 2^-52.
	machineEpsilon = 0x1p-52
)
