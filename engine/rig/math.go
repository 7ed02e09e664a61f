package rig

import "math"

func sin32(v float32) float32 { return float32(math.Sin(float64(v))) }
func cos32(v float32) float32 { return float32(math.Cos(float64(v))) }

func deg2rad(deg float32) float32 { return deg * math.Pi / 180 }
func rad2deg(rad float32) float32 { return rad * 180 / math.Pi }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
