// Package numeric provides epsilon-tolerant floating-point comparisons used throughout the
// collision pipeline, where exact equality is never the right test for a computed
// coordinate or determinant.
//
// FloatEquals, FloatGreaterThan, FloatLessThan, and FloatLessThanOrEqualTo all take an
// explicit epsilon rather than consulting a package-level default, so callers such as
// [geomkernel] and [world] can pass the process-wide epsilon from [linesim.GetEpsilon]
// or a locally tightened tolerance.
package numeric
