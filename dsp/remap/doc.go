// Package remap implements the five-stage amplitude remapping pipeline.
//
// A sample runs through an ordered list of stages (waveshape, power curve,
// harmonic injection, bit reduction and fold). The order is configurable and
// may repeat stages. The harmonic stage always takes its phase from the
// original input sample, not from the running value.
//
// All functions are allocation-free and safe to call from the audio thread.
package remap
