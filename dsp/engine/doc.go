// Package engine runs the per-sample effect chain on blocks of audio.
//
// Each sample passes through sample-and-hold, input gain, a biquad filter
// placed before or after the remap pipeline, a dry/wet blend, output gain
// and a final clamp to [-1, 1].
//
// Parameters live on the control side. Every change rebuilds an immutable
// [Snapshot] holding the derived gains, filter coefficients and the display
// curve, and publishes it with one atomic pointer store. [Engine.Process]
// loads the snapshot once per block and never locks or allocates. Per
// channel state (hold register and filter history) lives in an arena sized
// by [Engine.Prepare].
package engine
