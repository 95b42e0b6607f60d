package vec32

import "math"

// float32 wrappers over the float64 stdlib math functions.
// The conversion through float64 is exact for any float32 input.

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func abs32(x float32) float32 { return float32(math.Abs(float64(x))) }
