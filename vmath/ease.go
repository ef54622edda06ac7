package vmath

// Easing functions remap a normalized time fraction in [0,1] to a
// perceptually smoother progress value. All are monotonic on [0,1]
// and fix the endpoints: f(0)=0, f(1)=1.

// EaseOutCubic decelerates toward the end: 1-(1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	inv := 1.0 - t
	return 1.0 - inv*inv*inv
}

// EaseInOutQuartic accelerates then decelerates with a steep middle:
// 8t⁴ for t<0.5, mirrored (1 - 8(1-t)⁴) above. Fixes f(0.5)=0.5
func EaseInOutQuartic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	inv := 1.0 - t
	return 1.0 - 8*inv*inv*inv*inv
}

// ExpApproach moves current toward target by the given per-frame factor.
// factor is the fraction of the remaining distance covered each call
func ExpApproach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}
