// Package biquad provides the runtime of a single second-order IIR section.
//
// A [Section] runs Direct Form I with x1, x2, y1, y2 history. Coefficients
// are a0-normalized and come from dsp/filter/design. A zero Section passes
// samples through unchanged until [Section.SetCoefficients] is called.
//
// Coefficients and history are separate values so one coefficient set can
// be shared by many channels, each owning its own [State].
package biquad
