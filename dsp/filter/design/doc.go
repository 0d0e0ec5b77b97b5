// Package design derives biquad coefficients from musical parameters.
//
// [Cookbook] implements the RBJ audio EQ cookbook with the bandwidth given in
// octaves. Results are a0-normalized [biquad.Coefficients]. Degenerate
// inputs are clamped so that the result is always finite: the centre
// frequency is kept below Nyquist and ω is kept away from 0 and π where
// sin(ω) vanishes.
package design
