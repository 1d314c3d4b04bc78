package shade

import (
	"fmt"
	"math"
)

// Easing reshapes the interpolation fraction between two adjacent ramp
// stops. Most easings map 0 to 0 and 1 to 1.
// Parabola, ExpImpulse and Heartbeat are pulse shapes that return toward
// their start color.
type Easing int

const (
	// EaseLinear leaves the fraction unchanged.
	EaseLinear Easing = iota
	// EaseIdentity is the almost-unit-identity t²(2-t): zero slope at 0,
	// unit slope at 1.
	EaseIdentity
	// EaseSmoothStep is 3t²-2t³.
	EaseSmoothStep
	// EaseSmootherStep is Perlin's 6t⁵-15t⁴+10t³.
	EaseSmootherStep
	// EaseExponential is 1-2^(-10t).
	EaseExponential
	// EaseCubic is t³.
	EaseCubic
	// EaseBounce settles at 1 after decreasing bounces.
	EaseBounce
	// EaseCircular is the quarter circle sqrt((2-t)t).
	EaseCircular
	// EaseSine is sin(tπ/2).
	EaseSine
	// EaseParabola is sqrt(4t(1-t)), peaking at t=0.5.
	EaseParabola
	// EaseGain1 expands the ends and compresses the middle (k=0.3).
	EaseGain1
	// EaseGain2 compresses the ends and expands the middle (k=3.33).
	EaseGain2
	// EaseExpImpulse rises fast to 1 at t=0.5 then decays.
	EaseExpImpulse
	// EaseHeartbeat is a single soft beat.
	EaseHeartbeat
)

var easingNames = [...]string{
	"Linear", "Identity", "SmoothStep", "SmootherStep", "Exponential",
	"Cubic", "Bounce", "Circular", "Sine", "Parabola", "Gain1", "Gain2",
	"ExpImpulse", "Heartbeat",
}

func (e Easing) String() string {
	if e >= 0 && int(e) < len(easingNames) {
		return easingNames[e]
	}
	return fmt.Sprintf("Easing(%d)", int(e))
}

func (e Easing) valid() bool {
	return e >= EaseLinear && e <= EaseHeartbeat
}

// Apply evaluates the easing at t in [0, 1].
func (e Easing) Apply(t float64) float64 {
	switch e {
	case EaseIdentity:
		return t * t * (2 - t)
	case EaseSmoothStep:
		return t * t * (3 - 2*t)
	case EaseSmootherStep:
		return t * t * t * (t*(t*6-15) + 10)
	case EaseExponential:
		if t == 1 {
			return 1
		}
		return 1 - math.Exp2(-10*t)
	case EaseCubic:
		return t * t * t
	case EaseBounce:
		return bounce(t)
	case EaseCircular:
		return math.Sqrt((2 - t) * t)
	case EaseSine:
		return math.Sin(t * math.Pi / 2)
	case EaseParabola:
		return math.Sqrt(4 * t * (1 - t))
	case EaseGain1:
		return gain(t, 0.3)
	case EaseGain2:
		return gain(t, 3.3333)
	case EaseExpImpulse:
		return 2 * t * math.Exp(1-2*t)
	case EaseHeartbeat:
		v := math.Atan(math.Sin(t*math.Pi) * 6)
		return (v + math.Pi/2) / math.Pi
	default:
		return t
	}
}

func bounce(t float64) float64 {
	const k = 7.5625
	switch {
	case t < 1/2.75:
		return k * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return k*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return k*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return k*t*t + 0.984375
	}
}

func gain(t, k float64) float64 {
	if t < 0.5 {
		return 0.5 * math.Pow(2*t, k)
	}
	return 1 - 0.5*math.Pow(2*(1-t), k)
}
