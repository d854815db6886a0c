// Package dotprod provides structured dot products of a fixed real
// coefficient vector against streaming sample vectors, the primitive
// underlying FIR filtering, correlation, and matched filtering.
//
// Two flavors are available: [Complex] applies real coefficients to
// interleaved complex64 samples, [Real] applies them to float32 samples.
// Both precompute an aligned coefficient buffer at creation time so that
// every Execute call runs a pure multiply-accumulate with no allocation.
//
// # Usage
//
// For repeated execution with the same coefficients, create a structured
// object once:
//
//	q := dotprod.NewComplex(coeffs)
//	defer q.Close()
//	y := q.Execute(samples) // one complex64 per frame
//
// Matched filtering wants the coefficients applied back to front; create
// the object with the reversed layout instead of reversing the slice:
//
//	q := dotprod.NewComplexReversed(coeffs)
//
// For one-shot computation, the scalar reference functions avoid the setup
// cost entirely:
//
//	y := dotprod.Direct(coeffs, samples)
//
// # Algorithm selection
//
// Execute dispatches on the coefficient count: short vectors run a
// single-accumulator blocked kernel, vectors of 128 coefficients or more run
// a four-way unrolled multi-accumulator kernel that hides load latency. The
// crossover follows the original C implementation's empirical threshold;
// dispatch never changes the mathematical result, only throughput. The lane
// width of the blocked kernels (4, 8, or 16 float32 lanes) is chosen once
// per process from the detected CPU features, falling back to scalar code
// when no vector register class is available.
//
// All kernels agree with [Direct] within floating-point tolerance for every
// input; they are not bit-exact with each other because they sum in
// different orders.
//
// # Memory contract
//
// The coefficient buffer is allocated on a 64-byte boundary, satisfying the
// widest vector load any kernel performs. Sample buffers carry no alignment
// guarantee. Coefficient slices passed to constructors are copied, never
// aliased.
//
// # Concurrency
//
// Execute does not mutate the object and is safe to call concurrently on a
// shared object. Lifecycle operations (Recreate, Copy, Close) are not; the
// caller must serialize them against in-flight Execute calls.
package dotprod
