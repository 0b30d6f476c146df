package dstar

import "math"

// eps is the shared tolerance for every floating-point comparison in the
// planner: key ordering, g/rhs consistency checks, and path extraction all
// go through the helpers below. A single tolerance everywhere is what keeps
// the consistency/open-list bijection deterministic.
const eps = 1e-9

// less reports a < b beyond tolerance. Infinities behave naturally:
// less(x, +Inf) is true for finite x, less(+Inf, +Inf) is false.
func less(a, b float64) bool { return a < b-eps }

// greater reports a > b beyond tolerance.
func greater(a, b float64) bool { return a > b+eps }

// eq reports a and b equal within tolerance; +Inf equals +Inf.
func eq(a, b float64) bool { return !less(a, b) && !greater(a, b) }

// isInf reports whether v is the positive-infinity cost sentinel.
func isInf(v float64) bool { return math.IsInf(v, 1) }
