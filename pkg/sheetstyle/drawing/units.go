// Package drawing provides the DrawingML style object model: colors, fills,
// lines, effects, 3-D formatting and shape properties.
//
// Every numeric setter clamps its input to the valid range instead of
// returning an error, and every ToXxx method emits only the parts that have
// been set, in the child order the schema requires.
package drawing

import "math"

// EMUPerPoint is the number of EMUs (English Metric Units) per point.
// 1 inch = 914400 EMU = 72 points, therefore 914400 / 72 = 12700.
const EMUPerPoint = 12700

// EMUPerPixel is the number of EMUs per pixel at 96 DPI.
// 1 inch = 96 pixels at 96 DPI, therefore 914400 / 96 = 9525.
const EMUPerPixel = 9525

// AngleUnitsPerDegree is the DrawingML angle resolution (60000ths of a degree).
const AngleUnitsPerDegree = 60000

// PercentUnits is the DrawingML percentage resolution (1000ths of a percent).
const PercentUnits = 1000

// fixedEpsilon absorbs binary representation error of decimal literals such
// as 64.999 before flooring.
const fixedEpsilon = 1e-6

// PointsToEMU converts points to EMU.
func PointsToEMU(pt float64) int {
	return fixed(pt * EMUPerPoint)
}

// EMUToPoints converts EMU to points.
func EMUToPoints(emu int64) float64 {
	return float64(emu) / EMUPerPoint
}

// EMUToPixels converts EMU to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// DegreesToAngle converts degrees to DrawingML angle units.
func DegreesToAngle(deg float64) int {
	return fixed(deg * AngleUnitsPerDegree)
}

// PercentToFixed converts a percentage to DrawingML percentage units.
func PercentToFixed(pct float64) int {
	return fixed(pct * PercentUnits)
}

// fixed floors v to an integer after absorbing representation error.
func fixed(v float64) int {
	return int(math.Floor(v + fixedEpsilon))
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
