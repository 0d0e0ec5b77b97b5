// Package waveshape provides the lookup-free waveshaper catalog.
//
// Every entry is a pure closed-form function of a normalized sample in
// [-1, 1]. Outputs are not strictly bounded; callers that need a bounded
// signal clamp after the full processing chain. Composite curves are built
// from three combinators:
//
//   - [Scaler] blends a side signal into the input, weighted by a triangular
//     window that peaks at |in| = 0.5 and vanishes at |in| in {0, 1}.
//   - [Expando] scales the input by the magnitude of a side signal.
//   - [Fold] reflects any value back into range around ±1 and attenuates the
//     result by 0.95.
//
// The catalog is a fixed array built at package initialization and never
// mutated, so it is safe for concurrent use from any goroutine.
package waveshape
