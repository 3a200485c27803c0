// Package vec implements fixed-size single-precision vectors (Vector2,
// Vector3, Vector4) for real-time graphics and physics.
//
// All types are plain immutable-by-value aggregates: every operation
// returns a new value and nothing is ever mutated in place. Copies are
// cheap bitwise duplications; none of the types own heap memory. The
// package-level named values (Zero3, UnitX3, Up3, ...) are initialized
// before any use and never written again, so unsynchronized concurrent
// reads are safe.
//
// Vector3 and Vector4 arithmetic runs on the 4-wide primitive layer, which
// dispatches to SSE or a pure Go fallback at build time. Vector3 keeps its
// unused fourth lane structurally zero so padding can never leak into a
// magnitude, dot, or cross result.
//
// # Comparison semantics
//
// The ordering and equality contract is unusual and deliberate, and
// callers relying on lexicographic comparison will be surprised:
//
//   - Less/LessEq/Greater/GreaterEq against another vector compare
//     MAGNITUDES, not lexicographic components.
//   - The *Scalar ordering variants compare the magnitude against |s|.
//   - Equal against another vector compares per-component closeness
//     within the type's epsilon.
//   - EqualScalar compares the magnitude against |s|.
package vec
